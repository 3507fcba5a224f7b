package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeguard/internal/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codeguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultMaxBytes), cfg.Limits.MaxBytes)
	assert.Equal(t, DefaultMaxLines, cfg.Limits.MaxLines)
	assert.Equal(t, DefaultTimeout, cfg.Limits.Timeout)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.False(t, cfg.Secrets.Enabled)
	assert.NotNil(t, cfg.Rules)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
limits:
  max_lines: 10
  timeout: 2s
secrets:
  enabled: true
rules:
  php.secure_randomness:
    disabled: true
  c.command_injection:
    severity: high
custom_rules:
  - language: Go
    id: go.unsafe_pointer
    title: Unsafe Pointer
    severity: medium
    pattern: 'unsafe\.Pointer'
    description: Use of unsafe.Pointer
    recommendation: Avoid package unsafe
  - language: php
    title: Debug Output
    severity: LOW
    pattern: 'var_dump\s*\('
server:
  addr: 127.0.0.1:9000
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level())
	assert.Equal(t, 10, cfg.Limits.MaxLines)
	assert.Equal(t, int64(DefaultMaxBytes), cfg.Limits.MaxBytes)
	assert.Equal(t, 2*time.Second, cfg.Limits.Timeout)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	require.Len(t, cfg.CustomRules, 2)
	assert.Equal(t, types.SeverityMedium, cfg.CustomRules[0].Severity)

	opts := cfg.RuleOptions()
	assert.True(t, opts.IncludeSecrets)
	assert.True(t, opts.Overrides["php.secure_randomness"].Disabled)
	assert.Equal(t, "high", opts.Overrides["c.command_injection"].Severity)
	require.Len(t, opts.Custom, 2)
	assert.Equal(t, "go", opts.Custom[0].ID)
	assert.Equal(t, "php", opts.Custom[1].ID)

	reg := cfg.Registry()
	assert.Empty(t, reg.Problems())
	set, ok := reg.RulesFor("go")
	require.True(t, ok)
	assert.Equal(t, "go.unsafe_pointer", set.Rules[0].ID)

	php, ok := reg.RulesFor("php")
	require.True(t, ok)
	for _, r := range php.Rules {
		assert.NotEqual(t, "php.secure_randomness", r.ID)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "limits: [oops"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "custom_rules:\n  - language: c\n    severity: extreme\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CODEGUARD_ADDR", ":9999")
	t.Setenv("CODEGUARD_MAX_BYTES", "2048")
	t.Setenv("CODEGUARD_MAX_LINES", "7")
	t.Setenv("CODEGUARD_TIMEOUT", "250ms")
	t.Setenv("CODEGUARD_SECRETS", "true")
	t.Setenv("CODEGUARD_LOG_LEVEL", "WARN")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, int64(2048), cfg.Limits.MaxBytes)
	assert.Equal(t, 7, cfg.Limits.MaxLines)
	assert.Equal(t, 250*time.Millisecond, cfg.Limits.Timeout)
	assert.True(t, cfg.Secrets.Enabled)
	assert.Equal(t, "warn", cfg.Level())

	t.Setenv("CODEGUARD_MAX_LINES", "many")
	assert.Error(t, Default().ApplyEnv())
}
