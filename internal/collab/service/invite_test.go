package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
	"github.com/Connecteamed/connected-be/internal/collab/store"
	"github.com/Connecteamed/connected-be/internal/collab/store/drivers/sqlite"
	"github.com/Connecteamed/connected-be/pkg/cryptox"
	"github.com/Connecteamed/connected-be/pkg/idx"
	"github.com/stretchr/testify/require"
)

// fixture opens an in-memory store seeded with one project, its owner and
// one outsider member who does not yet belong to the project.
type fixture struct {
	store    store.Store
	project  domain.Project
	owner    domain.Member
	outsider domain.Member
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	owner := domain.Member{
		ID:           idx.New().String(),
		Handle:       "alice",
		DisplayName:  "Alice",
		PasswordHash: "hash",
	}
	require.NoError(t, st.Members().CreateMember(ctx, owner))

	outsider := domain.Member{
		ID:           idx.New().String(),
		Handle:       "bob",
		DisplayName:  "Bob",
		PasswordHash: "hash",
	}
	require.NoError(t, st.Members().CreateMember(ctx, outsider))

	project, err := st.Projects().CreateProject(ctx, "apollo", owner.ID)
	require.NoError(t, err)
	require.NoError(t, st.Memberships().CreateMembership(ctx, project.ID, owner.ID))

	return fixture{store: st, project: project, owner: owner, outsider: outsider}
}

// fixedClock lets a test advance time explicitly.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time          { return c.now }
func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newInviteService(st store.Store, clk *fixedClock) *InviteService {
	return &InviteService{Store: st, Now: clk.Now}
}

func TestIssueMintsFreshCode(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	code, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	require.Len(t, code.Code, cryptox.InviteCodeLength)
	for _, r := range code.Code {
		require.Contains(t, cryptox.InviteCodeAlphabet, string(r))
	}
	require.Equal(t, fx.project.ID, code.ProjectID)
	require.Equal(t, clk.now, code.IssuedAt)
	require.Equal(t, clk.now.Add(24*time.Hour), code.ExpiresAt)
}

func TestIssueReusesCodeWithEnoughLifeLeft(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	first, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	// 23 hours later the code still has exactly an hour left, which is
	// just enough to be handed back.
	clk.Advance(23 * time.Hour)
	second, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)
	require.Equal(t, first.Code, second.Code)
	require.Equal(t, first.ExpiresAt, second.ExpiresAt)

	n, err := fx.store.InviteCodes().CountByProject(ctx, fx.project.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestIssueMintsDistinctCodesConcurrently(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	const workers = 16
	projects := make([]int64, workers)
	for i := range projects {
		p, err := fx.store.Projects().CreateProject(ctx, fmt.Sprintf("fleet-%02d", i), fx.owner.ID)
		require.NoError(t, err)
		require.NoError(t, fx.store.Memberships().CreateMembership(ctx, p.ID, fx.owner.ID))
		projects[i] = p.ID
	}

	codes := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i, projectID := range projects {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := svc.IssueOrReuse(ctx, projectID, fx.owner.ID)
			codes[i], errs[i] = code.Code, err
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{}, workers)
	for i := range workers {
		require.NoError(t, errs[i])
		require.NotContains(t, seen, codes[i], "code %q minted twice", codes[i])
		seen[codes[i]] = struct{}{}
	}
}

func TestIssueMintsNewCodeWhenRemainingTooShort(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	first, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	// One millisecond past the reuse threshold forces a fresh mint.
	clk.Advance(23*time.Hour + time.Millisecond)
	second, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Code, second.Code)
	require.Equal(t, clk.now.Add(24*time.Hour), second.ExpiresAt)

	// The superseded code is left in place to expire on its own.
	n, err := fx.store.InviteCodes().CountByProject(ctx, fx.project.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestIssueGuards(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	t.Run("unknown project", func(t *testing.T) {
		_, err := svc.IssueOrReuse(ctx, fx.project.ID+999, fx.owner.ID)
		require.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := svc.IssueOrReuse(ctx, fx.project.ID, idx.New().String())
		require.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("member outside the project", func(t *testing.T) {
		_, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.outsider.ID)
		require.ErrorIs(t, err, ErrNotProjectMember)

		n, err := fx.store.InviteCodes().CountByProject(ctx, fx.project.ID)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

// collidingCodes wraps the real repo but claims every candidate code is
// already taken, so generation can never succeed.
type collidingCodes struct {
	store.InviteCodes
}

func (collidingCodes) CodeExists(ctx context.Context, code string) (bool, error) {
	return true, nil
}

type collidingStore struct {
	store.Store
}

func (s collidingStore) InviteCodes() store.InviteCodes {
	return collidingCodes{s.Store.InviteCodes()}
}

func TestIssueGivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(collidingStore{fx.store}, clk)

	_, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.ErrorIs(t, err, ErrCodeGenerationExhausted)
}

func TestRedeemJoinsProject(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	code, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	project, err := svc.Redeem(ctx, code.Code, fx.outsider.ID)
	require.NoError(t, err)
	require.Equal(t, fx.project.ID, project.ID)

	ok, err := fx.store.Memberships().HasMembership(ctx, fx.project.ID, fx.outsider.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedeemRejectsExistingMember(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	code, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	_, err = svc.Redeem(ctx, code.Code, fx.owner.ID)
	require.ErrorIs(t, err, ErrAlreadyMember)
}

func TestRedeemRaceAdmitsMemberOnce(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	code, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Redeem(ctx, code.Code, fx.outsider.ID)
		}()
	}
	wg.Wait()

	// Exactly one goroutine gets the membership row; the loser hits the
	// primary key and is told it already belongs.
	if errs[0] == nil {
		require.ErrorIs(t, errs[1], ErrAlreadyMember)
	} else {
		require.ErrorIs(t, errs[0], ErrAlreadyMember)
		require.NoError(t, errs[1])
	}

	ok, err := fx.store.Memberships().HasMembership(ctx, fx.project.ID, fx.outsider.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedeemExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	code, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	t.Run("valid one millisecond before expiry", func(t *testing.T) {
		clk.Advance(24*time.Hour - time.Millisecond)
		_, err := svc.Redeem(ctx, code.Code, fx.outsider.ID)
		require.NoError(t, err)
	})

	t.Run("dead at the exact expiry instant", func(t *testing.T) {
		fx2 := newFixture(t)
		clk2 := &fixedClock{now: clk.now}
		svc2 := newInviteService(fx2.store, clk2)

		code2, err := svc2.IssueOrReuse(ctx, fx2.project.ID, fx2.owner.ID)
		require.NoError(t, err)

		clk2.Advance(24 * time.Hour)
		_, err = svc2.Redeem(ctx, code2.Code, fx2.outsider.ID)
		require.ErrorIs(t, err, ErrInvalidInviteCode)
	})
}

func TestRedeemExpiredAndUnknownAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	code, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	clk.Advance(25 * time.Hour)
	_, expiredErr := svc.Redeem(ctx, code.Code, fx.outsider.ID)
	_, unknownErr := svc.Redeem(ctx, "ZZZZZZZZ", fx.outsider.ID)

	require.ErrorIs(t, expiredErr, ErrInvalidInviteCode)
	require.ErrorIs(t, unknownErr, ErrInvalidInviteCode)
	require.Equal(t, expiredErr, unknownErr)
}

func TestRedeemRequiresExistingMember(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	code, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	_, err = svc.Redeem(ctx, code.Code, idx.New().String())
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestHousekeepingDropsOnlyExpiredCodes(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	clk := &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newInviteService(fx.store, clk)

	first, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	clk.Advance(23*time.Hour + time.Millisecond)
	second, err := svc.IssueOrReuse(ctx, fx.project.ID, fx.owner.ID)
	require.NoError(t, err)

	// First code expires, second is still live.
	require.NoError(t, fx.store.InviteCodes().DeleteExpired(ctx, first.ExpiresAt))

	n, err := fx.store.InviteCodes().CountByProject(ctx, fx.project.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got, err := fx.store.InviteCodes().GetValidByCode(ctx, second.Code, clk.now)
	require.NoError(t, err)
	require.Equal(t, second.Code, got.Code)
}
