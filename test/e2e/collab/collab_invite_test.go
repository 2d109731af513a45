package collab_test

import (
	"testing"

	"github.com/Connecteamed/connected-be/pkg/collabsdk"
	"github.com/stretchr/testify/require"
)

// TestInviteIssueAndJoin exercises the whole flow:
// 1. Two members sign up
// 2. The first creates a project (becoming its owner-member)
// 3. The owner fetches an invite code
// 4. The second member joins with the code
// 5. The project shows up in the second member's project list
func TestInviteIssueAndJoin(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := collabsdk.NewSDKClient(baseURL)

	owner := signupAndLogin(t, client, "owner")
	joiner := signupAndLogin(t, client, "joiner")

	project, err := owner.CreateProject(t.Context(), "orbital")
	require.NoError(t, err)
	require.Positive(t, project.ID)

	invite, err := owner.ProjectInvite(t.Context(), project.ID)
	require.NoError(t, err)
	require.Len(t, invite.InviteCode, 8)
	require.False(t, invite.ExpiredAt.IsZero())

	require.NoError(t, joiner.JoinProject(t.Context(), invite.InviteCode))

	projects, err := joiner.ListProjects(t.Context())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, project.ID, projects[0].ID)
}

// TestInviteCodeIsReusedWhileFresh verifies repeated fetches hand back the
// same code rather than minting a new one each time.
func TestInviteCodeIsReusedWhileFresh(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := collabsdk.NewSDKClient(baseURL)
	owner := signupAndLogin(t, client, "reuser")

	project, err := owner.CreateProject(t.Context(), "gemini")
	require.NoError(t, err)

	first, err := owner.ProjectInvite(t.Context(), project.ID)
	require.NoError(t, err)

	second, err := owner.ProjectInvite(t.Context(), project.ID)
	require.NoError(t, err)
	require.Equal(t, first.InviteCode, second.InviteCode)
	require.Equal(t, first.ExpiredAt, second.ExpiredAt)
}

func TestInviteErrorPaths(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := collabsdk.NewSDKClient(baseURL)

	owner := signupAndLogin(t, client, "erica")
	outsider := signupAndLogin(t, client, "oscar")

	project, err := owner.CreateProject(t.Context(), "daedalus")
	require.NoError(t, err)

	t.Run("non-member cannot fetch invite codes", func(t *testing.T) {
		_, err := outsider.ProjectInvite(t.Context(), project.ID)
		require.True(t, collabsdk.IsCode(err, collabsdk.ErrorCodeUnauthorizedMember), "got %v", err)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := owner.ProjectInvite(t.Context(), project.ID+9999)
		require.True(t, collabsdk.IsCode(err, collabsdk.ErrorCodeProjectNotFound), "got %v", err)
	})

	t.Run("bogus invite code", func(t *testing.T) {
		err := outsider.JoinProject(t.Context(), "NOPENOPE")
		require.True(t, collabsdk.IsCode(err, collabsdk.ErrorCodeInvalidInviteCode), "got %v", err)
	})

	t.Run("joining twice", func(t *testing.T) {
		invite, err := owner.ProjectInvite(t.Context(), project.ID)
		require.NoError(t, err)

		require.NoError(t, outsider.JoinProject(t.Context(), invite.InviteCode))

		err = outsider.JoinProject(t.Context(), invite.InviteCode)
		require.True(t, collabsdk.IsCode(err, collabsdk.ErrorCodeAlreadyInvited), "got %v", err)
	})
}
