package badger

import (
	"context"
	"testing"

	"github.com/ranji790/SmartBuddy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthSaveAndLoadCredentials(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	creds := &core.Credentials{
		PasswordHash: "pbkdf2-sha256$600000$c2FsdA$aGFzaA",
		PasswordHint: "Default password is 123",
	}

	require.NoError(t, repos.Auth.SaveCredentials(ctx, creds))

	loaded, err := repos.Auth.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, loaded)
}

func TestAuthLoadCredentialsUnset(t *testing.T) {
	repos := newTestRepos(t)

	loaded, err := repos.Auth.LoadCredentials(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestAuthSaveOverwrites(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Auth.SaveCredentials(ctx, &core.Credentials{PasswordHash: "old"}))
	require.NoError(t, repos.Auth.SaveCredentials(ctx, &core.Credentials{PasswordHash: "new", PasswordHint: "rotated"}))

	loaded, err := repos.Auth.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.PasswordHash)
	assert.Equal(t, "rotated", loaded.PasswordHint)
}
