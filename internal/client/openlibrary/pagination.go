package openlibrary

const (
	// DefaultPage is the page number used when the caller does not specify one.
	DefaultPage = 1
	// DefaultPerPage is the page size used when the caller does not specify one.
	DefaultPerPage = 50
	// MaxPerPage is the largest page size the upstream search endpoints accept.
	MaxPerPage = 1000
)

// Pagination describes the position of a Result page within the full set of matching records.
// All fields are derived arithmetically from page, per-page, and total and are never negative.
type Pagination struct {
	// CurrentPage is the 1-based page number of this Result.
	CurrentPage int `json:"current_page"`
	// PerPage is the number of items per page.
	PerPage int `json:"per_page"`
	// TotalItems is the total number of items across all pages.
	TotalItems int64 `json:"total_items"`
	// TotalPages is the total number of pages, always at least 1.
	TotalPages int `json:"total_pages"`
}

// NormalizePageWindow clamps the requested page and page size to valid values:
// pages below 1 become DefaultPage, sizes below 1 become DefaultPerPage,
// and sizes above MaxPerPage are capped.
func NormalizePageWindow(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if perPage < 1 {
		perPage = DefaultPerPage
	}

	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return page, perPage
}

// CalculateOffset converts a 1-based page number and page size into a zero-based item offset.
func CalculateOffset(page, perPage int) int {
	page, perPage = NormalizePageWindow(page, perPage)

	return (page - 1) * perPage
}

// CalculateTotalPages computes the number of pages needed to hold total items.
// A non-positive total still yields one page, so TotalPages is never zero or negative.
func CalculateTotalPages(total int64, perPage int) int {
	_, perPage = NormalizePageWindow(1, perPage)

	if total <= 0 {
		return 1
	}

	// Ceiling division.
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// NewPagination derives a Pagination from the requested window and the reported total.
// Negative totals are treated as zero.
func NewPagination(page, perPage int, total int64) Pagination {
	page, perPage = NormalizePageWindow(page, perPage)

	if total < 0 {
		total = 0
	}

	return Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  total,
		TotalPages:  CalculateTotalPages(total, perPage),
	}
}
