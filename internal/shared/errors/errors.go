// Package errors defines the sentinel errors shared across layers.
package errors

import "errors"

// ErrAuditNotFound is returned when no record exists for a slug.
var ErrAuditNotFound = errors.New("audit not found")
