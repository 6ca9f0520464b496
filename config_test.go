package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "rti", configFileName))
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestStoreLoadMissing(t *testing.T) {
	cfg, err := newTestStore(t).Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestStoreLoadMalformed(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("default_timezone = [\n"), 0o644))
	_, err := s.Load()
	assert.Error(t, err)
}

func TestStoreLoadExisting(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	data := "default_timezone = \"America/Chicago\"\ncustom_parsing_tokens = [\"%d-%m-%y %H:%M\"]\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(data), 0o644))

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		DefaultTimezone:     "America/Chicago",
		CustomParsingTokens: []string{"%d-%m-%y %H:%M"},
	}, cfg)
}

func TestStoreTimezone(t *testing.T) {
	s := newTestStore(t)

	msg, err := s.SetTimezone("chicago")
	require.NoError(t, err)
	assert.Equal(t, "Timezone updated to America/Chicago", msg)

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", cfg.DefaultTimezone)

	_, err = s.SetTimezone("Mars/Olympus_Mons")
	assert.ErrorIs(t, err, ErrUnknownTimezone)
	cfg, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", cfg.DefaultTimezone)

	msg, err = s.ClearTimezone()
	require.NoError(t, err)
	assert.Equal(t, "Timezone cleared.", msg)
	cfg, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.DefaultTimezone)
}

func TestStoreTokens(t *testing.T) {
	s := newTestStore(t)

	msg, err := s.RemoveToken("%d-%m-%y")
	require.NoError(t, err)
	assert.Equal(t, "No tokens to remove.", msg)

	for _, token := range []string{"%d-%m-%y %H:%M", "%d.%m.%Y"} {
		msg, err = s.AddToken(token)
		require.NoError(t, err)
		assert.Equal(t, "Custom Token successfully added.", msg)
	}
	for _, token := range []string{"%Q", "%m%H", "%Y-%m-%d %H:%M %Z"} {
		_, err = s.AddToken(token)
		assert.ErrorIs(t, err, ErrUnsupportedDirective, token)
	}

	tokens, err := s.Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{"%d-%m-%y %H:%M", "%d.%m.%Y"}, tokens)

	msg, err = s.RemoveToken("%Y")
	require.NoError(t, err)
	assert.Equal(t, "No matching token found.", msg)

	msg, err = s.RemoveToken("%d-%m-%y %H:%M")
	require.NoError(t, err)
	assert.Equal(t, "Custom token removed.", msg)

	// Removing the last token works too.
	msg, err = s.RemoveToken("%d.%m.%Y")
	require.NoError(t, err)
	assert.Equal(t, "Custom token removed.", msg)

	tokens, err = s.Tokens()
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestStoreSaveValidates(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Save(&Config{DefaultTimezone: "Nowhere/Special"}))
	assert.Error(t, s.Save(&Config{CustomParsingTokens: []string{""}}))
	assert.Error(t, s.Save(&Config{CustomParsingTokens: []string{"%H:%M", "%Q"}}))
	assert.Error(t, s.Save(&Config{CustomParsingTokens: []string{"%m%H"}}))
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.Save(&Config{DefaultTimezone: "UTC", CustomParsingTokens: []string{"%H:%M"}}))
}

func TestResolveLocation(t *testing.T) {
	stored := &Config{DefaultTimezone: "Asia/Kolkata"}

	tests := []struct {
		name    string
		flag    string
		env     map[string]string
		cfg     *Config
		want    string
		wantErr bool
	}{
		{name: "default", want: "UTC"},
		{name: "stored", cfg: stored, want: "Asia/Kolkata"},
		{name: "env over stored", env: map[string]string{timezoneEnv: "US/Central"}, cfg: stored, want: "US/Central"},
		{name: "flag over env", flag: "utc", env: map[string]string{timezoneEnv: "US/Central"}, cfg: stored, want: "UTC"},
		{name: "bad env", env: map[string]string{timezoneEnv: "bogus"}, cfg: stored, wantErr: true},
		{name: "bad flag", flag: "bogus", wantErr: true},
		{name: "bad stored", cfg: &Config{DefaultTimezone: "bogus"}, want: "UTC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := resolveLocation(tt.flag, env(tt.env), tt.cfg, zap.NewNop())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTimezone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.String())
		})
	}
}

func TestResolveLocationWarnsOnStoredTimezone(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	loc, err := resolveLocation("", env(nil), &Config{DefaultTimezone: "bogus"}, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ignoring stored timezone", logs.All()[0].Message)
}

func TestResolveCustomTokens(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cfg := &Config{CustomParsingTokens: []string{"%d-%m-%y", "%Q", "", "%H:%M"}}
	tokens := resolveCustomTokens(cfg, zap.New(core))
	assert.Equal(t, []string{"%d-%m-%y", "%H:%M"}, tokens)
	assert.Equal(t, 2, logs.FilterMessage("ignoring stored custom token").Len())
	assert.Nil(t, resolveCustomTokens(nil, zap.NewNop()))
}
