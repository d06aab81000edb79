package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/simpletype/internal/problemgen"
	"github.com/abhisek/simpletype/internal/typing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SIMPLETYPE_CAPITALS", "SIMPLETYPE_SPACES", "SIMPLETYPE_PUNCTUATION",
		"SIMPLETYPE_VERBOSE", "SIMPLETYPE_MODE", "SIMPLETYPE_SEED",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, typing.Config{}, cfg.Match)
	assert.Equal(t, problemgen.FormatNumeric, cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIMPLETYPE_CAPITALS", "true")
	t.Setenv("SIMPLETYPE_SPACES", "1")
	t.Setenv("SIMPLETYPE_PUNCTUATION", "false")
	t.Setenv("SIMPLETYPE_VERBOSE", "T")
	t.Setenv("SIMPLETYPE_MODE", "Tiles")
	t.Setenv("SIMPLETYPE_SEED", "99")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Match:   typing.Config{CapitalLetters: true, Spaces: true},
		Format:  problemgen.FormatMultipleChoice,
		Seed:    99,
		Verbose: true,
	}, cfg)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SIMPLETYPE_SPACES", "sometimes"},
		{"SIMPLETYPE_MODE", "hard"},
		{"SIMPLETYPE_SEED", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := ConfigFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    problemgen.AnswerFormat
		wantErr bool
	}{
		{"standard", problemgen.FormatNumeric, false},
		{"numeric", problemgen.FormatNumeric, false},
		{" TILES ", problemgen.FormatMultipleChoice, false},
		{"multiple_choice", problemgen.FormatMultipleChoice, false},
		{"", "", true},
		{"quiz", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "essay"
	assert.Error(t, cfg.Validate())
}
