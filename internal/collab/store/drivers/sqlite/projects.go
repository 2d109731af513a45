package sqlite

import (
	"context"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
)

type projectsRepo struct {
	db dbtx
}

func (r *projectsRepo) CreateProject(ctx context.Context, name string, ownerID string) (domain.Project, error) {
	now := toMillis(time.Now())

	const query = `
		INSERT INTO projects (name, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, owner_id, created_at, updated_at;
	`

	var (
		p                  domain.Project
		createdMs, updated int64
	)
	err := r.db.QueryRowContext(ctx, query, name, ownerID, now, now).
		Scan(&p.ID, &p.Name, &p.OwnerID, &createdMs, &updated)
	if err != nil {
		return domain.Project{}, mapConstraint(err)
	}

	p.CreatedAt = fromMillis(createdMs)
	p.UpdatedAt = fromMillis(updated)
	return p, nil
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id int64) (domain.Project, error) {
	const query = `
		SELECT id, name, owner_id, created_at, updated_at
		FROM projects
		WHERE id = ?;
	`

	var (
		p                  domain.Project
		createdMs, updated int64
	)
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.OwnerID, &createdMs, &updated)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}

	p.CreatedAt = fromMillis(createdMs)
	p.UpdatedAt = fromMillis(updated)
	return p, nil
}

func (r *projectsRepo) ListProjectsByMember(ctx context.Context, memberID string) ([]domain.Project, error) {
	const query = `
		SELECT p.id, p.name, p.owner_id, p.created_at, p.updated_at
		FROM projects p
		JOIN project_memberships m ON m.project_id = p.id
		WHERE m.member_id = ?
		ORDER BY p.created_at DESC, p.id DESC;
	`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var (
			p                  domain.Project
			createdMs, updated int64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.OwnerID, &createdMs, &updated); err != nil {
			return nil, err
		}
		p.CreatedAt = fromMillis(createdMs)
		p.UpdatedAt = fromMillis(updated)
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
