package domain

import "time"

// Project is an organizational unit members collaborate in. The owner
// reference is immutable after creation; the owner always holds a
// ProjectMembership created in the same transaction as the project itself.
type Project struct {
	ID        int64
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
