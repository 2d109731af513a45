package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
	"github.com/Connecteamed/connected-be/internal/collab/store"
	"github.com/Connecteamed/connected-be/pkg/cryptox"
	"github.com/Connecteamed/connected-be/pkg/idx"
	"github.com/Connecteamed/connected-be/pkg/slogx"
)

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrMemberNotFound          = errors.New("member not found")
	ErrNotProjectMember        = errors.New("member does not belong to project")
	ErrInvalidInviteCode       = errors.New("invite code not found or expired")
	ErrAlreadyMember           = errors.New("member already belongs to project")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique invite code")
)

const (
	// InviteTTL is how long a freshly minted invite code stays redeemable.
	InviteTTL = 24 * time.Hour

	// reuseThreshold is the minimum remaining lifetime an existing code must
	// have to be handed back instead of minting a new one.
	reuseThreshold = time.Hour

	// maxGenerationAttempts caps how many candidate codes are tried before
	// issuance gives up.
	maxGenerationAttempts = 5
)

type InviteService struct {
	Store store.Store

	// Now supplies the single timestamp an operation works with. Left nil
	// it falls back to time.Now; tests swap in a fixed clock.
	Now func() time.Time
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// IssueOrReuse returns an invite code for the project on behalf of the
// requesting member. If the project already has a code with at least an hour
// of life left, that code is returned verbatim; otherwise a new one is
// minted with a fresh 24 hour expiry. Superseded codes are left to expire on
// their own.
func (s *InviteService) IssueOrReuse(ctx context.Context, projectID int64, memberID string) (domain.InviteCode, error) {
	log := slogx.FromContext(ctx)
	now := s.now()

	// 1. Validate the project exists.
	if _, err := s.Store.Projects().GetProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite requested for non-existent project",
				slog.Int64("project_id", projectID),
			)
			return domain.InviteCode{}, ErrProjectNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return domain.InviteCode{}, err
	}

	// 2. Validate the requesting member exists.
	if _, err := s.Store.Members().GetMemberByID(ctx, memberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite requested by non-existent member",
				slog.Int64("project_id", projectID),
				slog.String("member_id", memberID),
			)
			return domain.InviteCode{}, ErrMemberNotFound
		}
		log.Error("failed to fetch member", slog.Any("error", err))
		return domain.InviteCode{}, err
	}

	// 3. Only existing project members may issue invites.
	ok, err := s.Store.Memberships().HasMembership(ctx, projectID, memberID)
	if err != nil {
		log.Error("failed to check membership", slog.Any("error", err))
		return domain.InviteCode{}, err
	}
	if !ok {
		log.Warn("invite requested by non-member",
			slog.Int64("project_id", projectID),
			slog.String("member_id", memberID),
		)
		return domain.InviteCode{}, ErrNotProjectMember
	}

	// 4. Reuse the current code when it still has enough life left.
	existing, err := s.Store.InviteCodes().GetLatestValidByProject(ctx, projectID, now)
	switch {
	case err == nil:
		if existing.Remaining(now) >= reuseThreshold {
			log.Debug("reusing existing invite code",
				slog.Int64("project_id", projectID),
				slog.Time("expires_at", existing.ExpiresAt),
			)
			return existing, nil
		}
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to fetch current invite code", slog.Any("error", err))
		return domain.InviteCode{}, err
	}

	// 5. Mint a new code.
	code, err := s.mintCode(ctx, projectID, now)
	if err != nil {
		return domain.InviteCode{}, err
	}

	log.Info("invite code issued",
		slog.Int64("project_id", projectID),
		slog.String("member_id", memberID),
		slog.Time("expires_at", code.ExpiresAt),
	)
	return code, nil
}

// mintCode generates a globally unique code and persists it. The unique
// index on the code column is the authority; the pre-insert existence check
// just keeps retries cheap. Each collision burns one attempt.
func (s *InviteService) mintCode(ctx context.Context, projectID int64, now time.Time) (domain.InviteCode, error) {
	log := slogx.FromContext(ctx)

	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		value, err := cryptox.GenerateInviteCode()
		if err != nil {
			log.Error("failed to generate invite code", slog.Any("error", err))
			return domain.InviteCode{}, err
		}

		exists, err := s.Store.InviteCodes().CodeExists(ctx, value)
		if err != nil {
			log.Error("failed to check invite code uniqueness", slog.Any("error", err))
			return domain.InviteCode{}, err
		}
		if exists {
			log.Debug("invite code collision, retrying",
				slog.Int("attempt", attempt),
			)
			continue
		}

		code := domain.InviteCode{
			ID:        idx.New().String(),
			Code:      value,
			ProjectID: projectID,
			IssuedAt:  now,
			ExpiresAt: now.Add(InviteTTL),
		}

		err = s.Store.InviteCodes().CreateInviteCode(ctx, code)
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race against a concurrent mint of the same value.
			log.Debug("invite code collision on insert, retrying",
				slog.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			log.Error("failed to store invite code", slog.Any("error", err))
			return domain.InviteCode{}, err
		}

		return code, nil
	}

	log.Warn("invite code generation exhausted",
		slog.Int64("project_id", projectID),
		slog.Int("attempts", maxGenerationAttempts),
	)
	return domain.InviteCode{}, ErrCodeGenerationExhausted
}

// Redeem joins the member to the project behind a still-valid invite code.
// Expired and never-issued codes are deliberately indistinguishable to the
// caller. The membership insert and its duplicate guard run in a single
// transaction so concurrent redeems of the same pair cannot both succeed.
func (s *InviteService) Redeem(ctx context.Context, codeValue string, memberID string) (domain.Project, error) {
	log := slogx.FromContext(ctx)
	now := s.now()

	// 1. Resolve the code. Only codes whose expiry is strictly in the
	// future count; one expiring exactly now is already dead.
	code, err := s.Store.InviteCodes().GetValidByCode(ctx, codeValue, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("redemption attempted with invalid or expired invite code")
			return domain.Project{}, ErrInvalidInviteCode
		}
		log.Error("failed to fetch invite code", slog.Any("error", err))
		return domain.Project{}, err
	}

	// 2. Validate the redeeming member exists.
	if _, err := s.Store.Members().GetMemberByID(ctx, memberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("redemption attempted by non-existent member",
				slog.String("member_id", memberID),
			)
			return domain.Project{}, ErrMemberNotFound
		}
		log.Error("failed to fetch member", slog.Any("error", err))
		return domain.Project{}, err
	}

	// 3. Fetch the project the code points at.
	project, err := s.Store.Projects().GetProjectByID(ctx, code.ProjectID)
	if err != nil {
		log.Error("failed to fetch project for invite code",
			slog.Int64("project_id", code.ProjectID),
			slog.Any("error", err),
		)
		return domain.Project{}, err
	}

	// 4. Insert the membership. The composite primary key is the
	// authoritative duplicate guard; the pre-check only exists to produce
	// a friendlier path for the common case.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		already, err := tx.Memberships().HasMembership(ctx, code.ProjectID, memberID)
		if err != nil {
			log.Error("failed to check membership", slog.Any("error", err))
			return err
		}
		if already {
			return ErrAlreadyMember
		}

		return tx.Memberships().CreateMembership(ctx, code.ProjectID, memberID)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		err = ErrAlreadyMember
	}
	if err != nil {
		if errors.Is(err, ErrAlreadyMember) {
			log.Warn("redemption attempted by existing member",
				slog.Int64("project_id", code.ProjectID),
				slog.String("member_id", memberID),
			)
		}
		return domain.Project{}, err
	}

	log.Info("member joined project via invite",
		slog.Int64("project_id", code.ProjectID),
		slog.String("member_id", memberID),
	)
	return project, nil
}
