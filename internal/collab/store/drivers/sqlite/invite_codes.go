package sqlite

import (
	"context"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
)

type inviteCodesRepo struct {
	db dbtx
}

func (r *inviteCodesRepo) CreateInviteCode(ctx context.Context, c domain.InviteCode) error {
	const query = `
		INSERT INTO invite_codes (id, code, project_id, issued_at, expires_at)
		VALUES (?, ?, ?, ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Code, c.ProjectID, toMillis(c.IssuedAt), toMillis(c.ExpiresAt))
	return mapConstraint(err)
}

func (r *inviteCodesRepo) GetLatestValidByProject(ctx context.Context, projectID int64, now time.Time) (domain.InviteCode, error) {
	const query = `
		SELECT id, code, project_id, issued_at, expires_at
		FROM invite_codes
		WHERE project_id = ? AND expires_at > ?
		ORDER BY issued_at DESC, id DESC
		LIMIT 1;
	`
	return r.scanCode(r.db.QueryRowContext(ctx, query, projectID, toMillis(now)))
}

func (r *inviteCodesRepo) GetValidByCode(ctx context.Context, code string, now time.Time) (domain.InviteCode, error) {
	const query = `
		SELECT id, code, project_id, issued_at, expires_at
		FROM invite_codes
		WHERE code = ? AND expires_at > ?;
	`
	return r.scanCode(r.db.QueryRowContext(ctx, query, code, toMillis(now)))
}

func (r *inviteCodesRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM invite_codes
			WHERE code = ?
		);
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, code).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *inviteCodesRepo) CountByProject(ctx context.Context, projectID int64) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM invite_codes
		WHERE project_id = ?;
	`

	var n int
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *inviteCodesRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	const query = `
		DELETE FROM invite_codes
		WHERE expires_at <= ?;
	`

	_, err := r.db.ExecContext(ctx, query, toMillis(now))
	return err
}

func (r *inviteCodesRepo) scanCode(row rowScanner) (domain.InviteCode, error) {
	var (
		c                  domain.InviteCode
		issuedMs, expMilli int64
	)
	err := row.Scan(&c.ID, &c.Code, &c.ProjectID, &issuedMs, &expMilli)
	if err != nil {
		return domain.InviteCode{}, mapNotFound(err)
	}

	c.IssuedAt = fromMillis(issuedMs)
	c.ExpiresAt = fromMillis(expMilli)
	return c, nil
}
