package collab_test

import (
	"testing"

	"github.com/Connecteamed/connected-be/pkg/collabsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := collabsdk.NewSDKClient(baseURL)

	livez, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", livez.Status)
	require.NotEmpty(t, livez.Version)

	readyz, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", readyz.Status)
	require.NotNil(t, readyz.Checks)
	require.Equal(t, "ok", readyz.Checks.Database)
}
