package sqlite

import (
	"context"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
)

type membersRepo struct {
	db dbtx
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	now := toMillis(time.Now())

	const query = `
		INSERT INTO members (id, handle, display_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Handle, m.DisplayName, m.PasswordHash, now, now)
	return mapConstraint(err)
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	const query = `
		SELECT id, handle, display_name, password_hash, created_at, updated_at
		FROM members
		WHERE id = ?;
	`
	return r.scanMember(r.db.QueryRowContext(ctx, query, id))
}

func (r *membersRepo) GetMemberByHandle(ctx context.Context, handle string) (domain.Member, error) {
	const query = `
		SELECT id, handle, display_name, password_hash, created_at, updated_at
		FROM members
		WHERE handle = ?;
	`
	return r.scanMember(r.db.QueryRowContext(ctx, query, handle))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *membersRepo) scanMember(row rowScanner) (domain.Member, error) {
	var (
		m                  domain.Member
		createdMs, updated int64
	)
	err := row.Scan(&m.ID, &m.Handle, &m.DisplayName, &m.PasswordHash, &createdMs, &updated)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}

	m.CreatedAt = fromMillis(createdMs)
	m.UpdatedAt = fromMillis(updated)
	return m, nil
}
