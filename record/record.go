// Package record persists finalized complaint records. Each completion event
// appends exactly one self-contained record.
package record

import (
	"context"
	"time"
)

// Complaint is one finalized fraud report: the collected field values plus
// bookkeeping assigned at completion time.
type Complaint struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Fields    map[string]string `json:"fields"`
}

// Store appends completed complaint records.
type Store interface {
	Append(ctx context.Context, c Complaint) error
	Close() error
}
