package xcbalance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/xcbalance/internal/logging"
	"github.com/arloliu/xcbalance/strategy"
)

// warnRecorder counts Warn calls.
type warnRecorder struct {
	logging.NopLogger
	warnings []string
}

func (w *warnRecorder) Warn(msg string, _ ...any) {
	w.warnings = append(w.warnings, msg)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, strategy.NameLeastLoaded, cfg.Strategy)
	require.Equal(t, 1, cfg.PadValue)
	require.Equal(t, 1, cfg.DerivativeOrder)
	require.Equal(t, 1, cfg.AtomsPerRound)
	require.Equal(t, 0, cfg.Parallelism)
	require.Equal(t, "xcbalance-report", cfg.Report.Bucket)
	require.Equal(t, "summary", cfg.Report.KeyPrefix)
	require.Zero(t, cfg.Report.TTL)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, strategy.NameLeastLoaded, cfg.Strategy)
		require.Equal(t, 1, cfg.PadValue)
		require.Equal(t, 1, cfg.AtomsPerRound)
		require.Equal(t, "xcbalance-report", cfg.Report.Bucket)
		require.Zero(t, cfg.DerivativeOrder)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Strategy:        "replicated-fillin",
			PadValue:        8,
			DerivativeOrder: 2,
			AtomsPerRound:   3,
			Parallelism:     4,
			Report:          ReportConfig{Bucket: "b", KeyPrefix: "p", TTL: time.Minute},
		}
		SetDefaults(&cfg)

		require.Equal(t, "replicated-fillin", cfg.Strategy)
		require.Equal(t, 8, cfg.PadValue)
		require.Equal(t, 2, cfg.DerivativeOrder)
		require.Equal(t, 3, cfg.AtomsPerRound)
		require.Equal(t, 4, cfg.Parallelism)
		require.Equal(t, ReportConfig{Bucket: "b", KeyPrefix: "p", TTL: time.Minute}, cfg.Report)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"default is valid", func(*Config) {}, nil},
		{"alias strategy", func(c *Config) { c.Strategy = "REPLICATED" }, nil},
		{"unknown strategy", func(c *Config) { c.Strategy = "static" }, ErrUnknownStrategy},
		{"zero pad", func(c *Config) { c.PadValue = 0 }, ErrInvalidConfig},
		{"negative derivative order", func(c *Config) { c.DerivativeOrder = -1 }, ErrInvalidConfig},
		{"zero atoms per round", func(c *Config) { c.AtomsPerRound = 0 }, ErrInvalidConfig},
		{"negative parallelism", func(c *Config) { c.Parallelism = -2 }, ErrInvalidConfig},
		{"negative ttl", func(c *Config) { c.Report.TTL = -time.Second }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("no warnings for defaults", func(t *testing.T) {
		rec := &warnRecorder{}
		cfg := DefaultConfig()
		cfg.ValidateWithWarnings(rec)

		require.Empty(t, rec.warnings)
	})

	t.Run("warns on odd pad and multi-atom rounds", func(t *testing.T) {
		rec := &warnRecorder{}
		cfg := DefaultConfig()
		cfg.PadValue = 12
		cfg.AtomsPerRound = 2
		cfg.ValidateWithWarnings(rec)

		require.Len(t, rec.warnings, 2)
	})

	t.Run("power of two pad is fine", func(t *testing.T) {
		rec := &warnRecorder{}
		cfg := DefaultConfig()
		cfg.PadValue = 16
		cfg.ValidateWithWarnings(rec)

		require.Empty(t, rec.warnings)
	})
}

// TestConfig_YAML demonstrates that time.Duration works directly with YAML unmarshaling
func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
strategy: Replicated-FillIn
padValue: 8
derivativeOrder: 2
atomsPerRound: 4
parallelism: 3
report:
  bucket: job-42
  keyPrefix: lb
  ttl: 10m
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, "Replicated-FillIn", cfg.Strategy)
	require.Equal(t, 8, cfg.PadValue)
	require.Equal(t, 2, cfg.DerivativeOrder)
	require.Equal(t, 4, cfg.AtomsPerRound)
	require.Equal(t, 3, cfg.Parallelism)
	require.Equal(t, "job-42", cfg.Report.Bucket)
	require.Equal(t, "lb", cfg.Report.KeyPrefix)
	require.Equal(t, 10*time.Minute, cfg.Report.TTL)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	t.Run("partial YAML keeps defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("padValue: 4\nderivativeOrder: 0\n"))

		require.NoError(t, err)
		require.Equal(t, 4, cfg.PadValue)
		require.Zero(t, cfg.DerivativeOrder)
		require.Equal(t, strategy.NameLeastLoaded, cfg.Strategy)
		require.Equal(t, 1, cfg.AtomsPerRound)
		require.Equal(t, "xcbalance-report", cfg.Report.Bucket)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := ParseConfig([]byte("padValue: [1, 2"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lb.yaml")
		require.NoError(t, os.WriteFile(path, []byte("strategy: default\npadValue: 32\n"), 0o600))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "default", cfg.Strategy)
		require.Equal(t, 32, cfg.PadValue)
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
