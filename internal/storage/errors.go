package storage

import "github.com/sevigo/quality-warden/internal/core"

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = core.ErrNoRecord
