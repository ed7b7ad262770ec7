// Package utils provides general-purpose helper utilities used across the
// client: context keys, the shared HTTP client, request identifiers and
// bearer token inspection.
package utils
