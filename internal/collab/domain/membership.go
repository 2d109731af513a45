package domain

import "time"

// ProjectMembership associates one member with one project. The
// (project, member) pair is unique and rows are insert-only; a member
// cannot join the same project twice.
type ProjectMembership struct {
	ProjectID int64
	MemberID  string
	CreatedAt time.Time
}
