package service

import (
	"context"
	"testing"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/store/drivers/sqlite"
	"github.com/Connecteamed/connected-be/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newMemberService(t *testing.T) *MemberService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &MemberService{
		Store: st,
		Signer: &jwtx.Signer{
			Secret: []byte("test-secret"),
			Issuer: "connected-test",
			TTL:    time.Minute,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newMemberService(t)

	member, err := svc.Register(ctx, "Carol", "Carol C", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "carol", member.Handle)
	require.NotEmpty(t, member.ID)

	got, token, err := svc.Login(ctx, "carol", "hunter22")
	require.NoError(t, err)
	require.Equal(t, member.ID, got.ID)
	require.NotEmpty(t, token)

	verifier := &jwtx.Verifier{Secret: []byte("test-secret"), Issuer: "connected-test"}
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, member.ID, claims.Subject)
	require.Equal(t, "carol", claims.Handle)
}

func TestRegisterRejectsTakenHandle(t *testing.T) {
	ctx := context.Background()
	svc := newMemberService(t)

	_, err := svc.Register(ctx, "dave", "", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dave", "", "pw2")
	require.ErrorIs(t, err, ErrHandleAlreadyTaken)
}

func TestLoginHidesWhichPartFailed(t *testing.T) {
	ctx := context.Background()
	svc := newMemberService(t)

	_, err := svc.Register(ctx, "erin", "", "correct")
	require.NoError(t, err)

	_, _, badPassword := svc.Login(ctx, "erin", "wrong")
	_, _, badHandle := svc.Login(ctx, "nobody", "correct")

	require.ErrorIs(t, badPassword, ErrInvalidCredentials)
	require.ErrorIs(t, badHandle, ErrInvalidCredentials)
}

func TestRegisterRequiresHandleAndPassword(t *testing.T) {
	ctx := context.Background()
	svc := newMemberService(t)

	_, err := svc.Register(ctx, "", "", "pw")
	require.ErrorIs(t, err, ErrInvalidSignupRequest)

	_, err = svc.Register(ctx, "frank", "", "")
	require.ErrorIs(t, err, ErrInvalidSignupRequest)
}
