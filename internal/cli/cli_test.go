package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/tripwizard/internal/config"
	"github.com/aretw0/tripwizard/internal/logging"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Store.DataDir = t.TempDir()
	return cfg
}

func TestResolveSessionID(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	id, err := ResolveSessionID(dir, "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	again, err := ResolveSessionID(dir, "")
	require.NoError(t, err)
	assert.Equal(t, id, again, "saved id is reused")

	explicit, err := ResolveSessionID(dir, "mine")
	require.NoError(t, err)
	assert.Equal(t, "mine", explicit)

	require.NoError(t, ForgetSessionID(dir))
	require.NoError(t, ForgetSessionID(dir))
	fresh, err := ResolveSessionID(dir, "")
	require.NoError(t, err)
	assert.NotEqual(t, id, fresh)
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger("debug")
	assert.NoError(t, err)
	_, err = NewLogger("off")
	assert.NoError(t, err)
	_, err = NewLogger("loud")
	assert.Error(t, err)
}

func TestBuild_FileBackendPersists(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	rt, err := Build(ctx, cfg, logging.NewNop(), BuildOptions{NoDelays: true})
	require.NoError(t, err)
	require.NoError(t, pages.SubmitTrip(ctx, rt.Wizard.Session(), 2, 5))
	require.NoError(t, pages.SelectDestination(ctx, rt.Wizard.Durable(), domain.DestinationRecord{Name: "Goa", Price: 2000}))
	require.NoError(t, rt.Close())

	// A second invocation sees the same session
	rt2, err := Build(ctx, cfg, logging.NewNop(), BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, rt.SessionID, rt2.SessionID)

	snap := rt2.Wizard.Load(ctx)
	assert.Equal(t, "₹20,000", snap.Costs.Total)
	assert.FileExists(t, filepath.Join(cfg.Store.DataDir, "sessions", rt.SessionID+".json"))
	assert.FileExists(t, filepath.Join(cfg.Store.DataDir, "local.json"))
}

func TestBuild_Encryption(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Store.EncryptionKey = strings.Repeat("0f", 32)

	rt, err := Build(ctx, cfg, logging.NewNop(), BuildOptions{})
	require.NoError(t, err)
	require.NoError(t, pages.SelectDestination(ctx, rt.Wizard.Durable(), domain.DestinationRecord{Name: "Goa", Price: 2000}))

	raw, err := os.ReadFile(filepath.Join(cfg.Store.DataDir, "local.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Goa")

	snap := rt.Wizard.Load(ctx)
	assert.Equal(t, "Goa", snap.Destination.Name)
}

func TestBuild_Redis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := testConfig(t)
	cfg.Store.Backend = config.BackendRedis
	cfg.Redis.Addr = mr.Addr()
	cfg.SessionID = "trip-1"

	rt, err := Build(ctx, cfg, logging.NewNop(), BuildOptions{})
	require.NoError(t, err)
	defer rt.Close()

	require.NoError(t, pages.SubmitTrip(ctx, rt.Wizard.Session(), 3, 4))
	assert.Equal(t, "3", mr.HGet("tripwizard:session:trip-1", domain.KeyTravelers))
	assert.True(t, mr.TTL("tripwizard:session:trip-1") > 0)
}

func TestBuild_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig(t)
	cfg.Store.Backend = config.BackendRedis
	cfg.Redis.Addr = addr

	_, err := Build(context.Background(), cfg, logging.NewNop(), BuildOptions{})
	assert.Error(t, err)
}

func TestBuild_RedisInvalidSettingsLeaveNoConnection(t *testing.T) {
	mr := miniredis.RunT(t)

	cases := map[string]func(*config.Config){
		"bad key":    func(c *config.Config) { c.Store.EncryptionKey = "zz" },
		"short key":  func(c *config.Config) { c.Store.EncryptionKey = strings.Repeat("0f", 8) },
		"bad locale": func(c *config.Config) { c.Locale = "not a locale!" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Store.Backend = config.BackendRedis
			cfg.Redis.Addr = mr.Addr()
			mutate(&cfg)

			rt, err := Build(context.Background(), cfg, logging.NewNop(), BuildOptions{})
			require.Error(t, err)
			assert.Nil(t, rt)
			assert.Eventually(t, func() bool {
				return mr.CurrentConnectionCount() == 0
			}, time.Second, 10*time.Millisecond)
		})
	}
}

func TestBuild_Locale(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Store.Backend = config.BackendMemory
	cfg.Locale = "en-US"
	cfg.Currency = "$"

	rt, err := Build(ctx, cfg, logging.NewNop(), BuildOptions{})
	require.NoError(t, err)
	require.NoError(t, pages.SubmitTrip(ctx, rt.Wizard.Session(), 10, 10))
	require.NoError(t, pages.SelectDestination(ctx, rt.Wizard.Durable(), domain.DestinationRecord{Name: "Ladakh", Price: 3500}))

	snap := rt.Wizard.Load(ctx)
	assert.Equal(t, "$350,000", snap.Costs.Total)

	cfg.Locale = "not a locale!"
	_, err = Build(ctx, cfg, logging.NewNop(), BuildOptions{})
	assert.Error(t, err)
}

func TestWriters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"days": 5}))
	assert.JSONEq(t, `{"days":5}`, buf.String())

	buf.Reset()
	require.NoError(t, WriteYAML(&buf, map[string]int{"days": 5}))
	assert.Equal(t, "days: 5\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteMarkdown(&buf, "# Plain", false))
	assert.Equal(t, "# Plain", buf.String())

	assert.True(t, ValidFormat(FormatMarkdown))
	assert.False(t, ValidFormat("xml"))
}
