package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
	"github.com/Connecteamed/connected-be/internal/collab/store"
	"github.com/Connecteamed/connected-be/pkg/cryptox"
	"github.com/Connecteamed/connected-be/pkg/idx"
	"github.com/Connecteamed/connected-be/pkg/jwtx"
	"github.com/Connecteamed/connected-be/pkg/slogx"
)

var (
	ErrInvalidSignupRequest = errors.New("invalid signup request")
	ErrHandleAlreadyTaken   = errors.New("handle already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

type MemberService struct {
	Store  store.Store
	Signer *jwtx.Signer

	// Now supplies timestamps; nil falls back to time.Now.
	Now func() time.Time
}

func (s *MemberService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates a new member account with an argon2id password hash.
func (s *MemberService) Register(ctx context.Context, handle, displayName, password string) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	handle = strings.TrimSpace(strings.ToLower(handle))
	if handle == "" || password == "" {
		log.Warn("signup missing required fields")
		return domain.Member{}, ErrInvalidSignupRequest
	}
	if displayName == "" {
		displayName = handle
	}

	// 2. Hash the password.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Member{}, err
	}

	// 3. Persist. The unique handle constraint is the authority on
	// availability.
	member := domain.Member{
		ID:           idx.New().String(),
		Handle:       handle,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
	}

	if err := s.Store.Members().CreateMember(ctx, member); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("signup attempted with taken handle",
				slog.String("handle", handle),
			)
			return domain.Member{}, ErrHandleAlreadyTaken
		}
		log.Error("failed to create member", slog.Any("error", err))
		return domain.Member{}, err
	}

	log.Info("member registered",
		slog.String("member_id", member.ID),
		slog.String("handle", member.Handle),
	)
	return member, nil
}

// Login verifies the handle/password pair and mints an access token.
// Lookup misses and bad passwords both yield ErrInvalidCredentials so the
// response does not leak which handles exist.
func (s *MemberService) Login(ctx context.Context, handle, password string) (domain.Member, string, error) {
	log := slogx.FromContext(ctx)

	member, err := s.Store.Members().GetMemberByHandle(ctx, strings.TrimSpace(strings.ToLower(handle)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown handle")
			return domain.Member{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch member", slog.Any("error", err))
		return domain.Member{}, "", err
	}

	if err := cryptox.VerifyPassword(password, member.PasswordHash); err != nil {
		log.Warn("login attempted with wrong password",
			slog.String("member_id", member.ID),
		)
		return domain.Member{}, "", ErrInvalidCredentials
	}

	token, err := s.Signer.Mint(member.ID, member.Handle, s.now())
	if err != nil {
		log.Error("failed to mint access token", slog.Any("error", err))
		return domain.Member{}, "", err
	}

	log.Info("member logged in", slog.String("member_id", member.ID))
	return member, token, nil
}

// GetMemberByID fetches a member by id.
func (s *MemberService) GetMemberByID(ctx context.Context, memberID string) (domain.Member, error) {
	return s.Store.Members().GetMemberByID(ctx, memberID)
}
