package cli

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/willbank/internal/client/config"
	"github.com/dmitrijs2005/willbank/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/willbank/internal/common"
	"github.com/dmitrijs2005/willbank/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	b := newBank(t)
	app, _ := newTestApp(t, b, "")

	var buf bytes.Buffer
	app.log = logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	app.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, app.Mode())
	assert.Contains(t, buf.String(), "switched mode")

	buf.Reset()
	app.setMode(ModeOnline)
	assert.Empty(t, buf.String(), "no log output when mode doesn't change")

	app.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, app.Mode())
	assert.Contains(t, buf.String(), "mode=offline")
}

func TestIsLoggedIn_FollowsStore(t *testing.T) {
	b := newBank(t)
	app, _ := newTestApp(t, b, "")
	assert.False(t, app.isLoggedIn())

	login(t, app)
	assert.True(t, app.isLoggedIn())
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{StorePath: memoryStore}

	repo, closeRepo, err := openStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeRepo() })

	assert.IsType(t, &credentials.MemoryRepository{}, repo)
}

func TestOpenStore_SQLitePersists(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StorePath: filepath.Join(t.TempDir(), "creds.db")}

	repo, closeRepo, err := openStore(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, common.AccessTokenKey, "A1"))
	require.NoError(t, closeRepo())

	repo, closeRepo, err = openStore(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeRepo() })

	v, ok, err := repo.Get(ctx, common.AccessTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A1", v)
}

func TestOpenStore_SealedRejectsWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creds.db")

	repo, closeRepo, err := openStore(ctx, &config.Config{StorePath: path, StorePassphrase: "correct horse"})
	require.NoError(t, err)
	assert.IsType(t, &credentials.SealedRepository{}, repo)
	require.NoError(t, repo.Set(ctx, common.RefreshTokenKey, "R1"))
	require.NoError(t, closeRepo())

	repo, closeRepo, err = openStore(ctx, &config.Config{StorePath: path, StorePassphrase: "battery staple"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeRepo() })

	_, _, err = repo.Get(ctx, common.RefreshTokenKey)
	assert.ErrorIs(t, err, common.ErrWrongPassphrase)
}

func TestOnSessionExpired_PrintsNotice(t *testing.T) {
	b := newBank(t)
	app, out := newTestApp(t, b, "")

	app.onSessionExpired(context.Background(), assert.AnError)

	assert.Equal(t, "Your session has expired. Please log in again.\n", out.String())
}
