package store

import (
	"context"
	"errors"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable.
type Store interface {
	Projects() Projects
	Members() Members
	Memberships() Memberships
	InviteCodes() InviteCodes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back; otherwise it
	// is committed. This is the recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Projects interface {
	// CreateProject inserts a new project and returns it with the
	// store-assigned ID. Fails with ErrAlreadyExists on a duplicate name.
	CreateProject(ctx context.Context, name string, ownerID string) (domain.Project, error)

	// GetProjectByID returns a project by id.
	GetProjectByID(ctx context.Context, id int64) (domain.Project, error)

	// ListProjectsByMember returns all projects the member belongs to,
	// newest first.
	ListProjectsByMember(ctx context.Context, memberID string) ([]domain.Project, error)
}

type Members interface {
	// CreateMember inserts a new member (id is provided by app via ULID).
	// Fails with ErrAlreadyExists on a duplicate handle.
	CreateMember(ctx context.Context, m domain.Member) error

	// GetMemberByID returns a member by id.
	GetMemberByID(ctx context.Context, id string) (domain.Member, error)

	// GetMemberByHandle is used during login.
	GetMemberByHandle(ctx context.Context, handle string) (domain.Member, error)
}

type Memberships interface {
	// CreateMembership inserts a (project, member) row. The unique pair
	// constraint is the authoritative duplicate guard; violations surface
	// as ErrAlreadyExists.
	CreateMembership(ctx context.Context, projectID int64, memberID string) error

	// HasMembership reports whether the member already belongs to the project.
	HasMembership(ctx context.Context, projectID int64, memberID string) (bool, error)
}

type InviteCodes interface {
	// CreateInviteCode writes a new invite code row. The unique index on
	// the code value is authoritative for global code uniqueness;
	// violations surface as ErrAlreadyExists.
	CreateInviteCode(ctx context.Context, c domain.InviteCode) error

	// GetLatestValidByProject returns the most recently issued code for the
	// project whose expiry is strictly after now.
	GetLatestValidByProject(ctx context.Context, projectID int64, now time.Time) (domain.InviteCode, error)

	// GetValidByCode returns the code row matching the given value with
	// expiry strictly after now. Expired and never-issued codes are
	// indistinguishable: both return ErrNotFound.
	GetValidByCode(ctx context.Context, code string, now time.Time) (domain.InviteCode, error)

	// CodeExists checks the code value against the full historical set,
	// expired rows included.
	CodeExists(ctx context.Context, code string) (bool, error)

	// CountByProject returns the number of invite code rows for a project,
	// expired rows included.
	CountByProject(ctx context.Context, projectID int64) (int, error)

	// DeleteExpired removes rows whose expiry is at or before now
	// (housekeeping).
	DeleteExpired(ctx context.Context, now time.Time) error
}
