package azdo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/azdo-envmgr/internal/config"
)

func TestPatAuthenticator(t *testing.T) {
	hdr, err := NewPatAuthenticator("secret").GetAuthorizationHeader()
	require.NoError(t, err)
	// base64(":secret")
	assert.Equal(t, "Basic OnNlY3JldA==", hdr)

	_, err = NewPatAuthenticator("  ").GetAuthorizationHeader()
	require.Error(t, err)
}

func TestClientFactory_Close(t *testing.T) {
	cfg, err := config.New("https://dev.azure.com/MyOrg/", "secret", "proj")
	require.NoError(t, err)

	f, err := NewClientFactory(cfg, NewPatAuthenticator(cfg.Token()))
	require.NoError(t, err)
	assert.Equal(t, "myorg", f.Organization())

	impl := f.(*clientFactory)
	assert.Equal(t, "https://dev.azure.com/MyOrg", impl.conn.BaseUrl)
	assert.True(t, impl.conn.SuppressFedAuthRedirect)

	ext, err := f.Extensions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ext)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	ctx := context.Background()
	_, err = f.TaskAgent(ctx)
	assert.ErrorIs(t, err, ErrConnectionClosed)
	_, err = f.Build(ctx)
	assert.ErrorIs(t, err, ErrConnectionClosed)
	_, err = f.Pipelines(ctx)
	assert.ErrorIs(t, err, ErrConnectionClosed)
	_, err = f.Core(ctx)
	assert.ErrorIs(t, err, ErrConnectionClosed)
	_, err = f.Extensions(ctx)
	assert.ErrorIs(t, err, ErrConnectionClosed)
}
