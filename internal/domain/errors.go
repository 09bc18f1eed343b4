package domain

import "errors"

// ErrNotFound is returned by repositories when no record matches.
// Storage backends translate their native not-found errors into it.
var ErrNotFound = errors.New("record not found")
