// Package app wires configuration, the Open Library client, and the fetch
// service together, and exposes one entry point per CLI command.
package app
