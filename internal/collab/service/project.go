package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
	"github.com/Connecteamed/connected-be/internal/collab/store"
	"github.com/Connecteamed/connected-be/pkg/slogx"
)

var (
	ErrInvalidProjectRequest = errors.New("invalid project request")
	ErrProjectNameTaken      = errors.New("project name already taken")
)

type ProjectService struct {
	Store store.Store
}

// Create makes a new project owned by the given member. The owner is added
// as the first project member in the same transaction so a project can
// never exist without anyone able to issue invites for it.
func (s *ProjectService) Create(ctx context.Context, name string, ownerID string) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		log.Warn("project creation missing name")
		return domain.Project{}, ErrInvalidProjectRequest
	}

	if _, err := s.Store.Members().GetMemberByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("project creation by non-existent member",
				slog.String("member_id", ownerID),
			)
			return domain.Project{}, ErrMemberNotFound
		}
		log.Error("failed to fetch member", slog.Any("error", err))
		return domain.Project{}, err
	}

	var project domain.Project
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		project, err = tx.Projects().CreateProject(ctx, name, ownerID)
		if err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, project.ID, ownerID)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("project creation with taken name",
				slog.String("name", name),
			)
			return domain.Project{}, ErrProjectNameTaken
		}
		log.Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project created",
		slog.Int64("project_id", project.ID),
		slog.String("owner_id", ownerID),
	)
	return project, nil
}

// Get fetches a project by id.
func (s *ProjectService) Get(ctx context.Context, projectID int64) (domain.Project, error) {
	project, err := s.Store.Projects().GetProjectByID(ctx, projectID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	return project, err
}

// ListForMember returns the projects the member belongs to, newest first.
func (s *ProjectService) ListForMember(ctx context.Context, memberID string) ([]domain.Project, error) {
	return s.Store.Projects().ListProjectsByMember(ctx, memberID)
}
