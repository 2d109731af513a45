package sqlite

import (
	"context"
	"time"
)

type membershipsRepo struct {
	db dbtx
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, projectID int64, memberID string) error {
	const query = `
		INSERT INTO project_memberships (project_id, member_id, created_at)
		VALUES (?, ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query, projectID, memberID, toMillis(time.Now()))
	return mapConstraint(err)
}

func (r *membershipsRepo) HasMembership(ctx context.Context, projectID int64, memberID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM project_memberships
			WHERE project_id = ? AND member_id = ?
		);
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, projectID, memberID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
