package models

import "github.com/google/uuid"

// Actor identifies the console user behind a mutation. It is copied into
// audit log entries.
type Actor struct {
	UserID    uuid.UUID
	Role      string
	IPAddress string
	UserAgent string
}

// AuditUserID returns the user ID for an audit entry, nil for anonymous callers
func (a Actor) AuditUserID() *uuid.UUID {
	if a.UserID == uuid.Nil {
		return nil
	}
	id := a.UserID
	return &id
}
