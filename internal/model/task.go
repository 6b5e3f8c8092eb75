package model

import (
	"path/filepath"
	"time"
)

// ExportTask represents one attempt to write a resource to disk
type ExportTask struct {
	ID          string
	Source      string     // namespace path of the exported resource
	Destination string     // file path chosen by the user, empty if cancelled
	Format      string     // encoder used ("png", "ico", ...)
	Status      TaskStatus // current state
	Bytes       int64      // bytes written on success
	LastError   string     // last error message if any
	StartedAt   time.Time
	FinishedAt  time.Time
}

// GetDisplayTitle returns the destination file name, or the source path if nothing was written
func (t *ExportTask) GetDisplayTitle() string {
	if t.Destination != "" {
		return filepath.Base(t.Destination)
	}
	return t.Source
}

// Duration returns how long the export took, or zero while it is still running
func (t *ExportTask) Duration() time.Duration {
	if t.FinishedAt.IsZero() || t.StartedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}
