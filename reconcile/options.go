package reconcile

import (
	"log/slog"
	"math"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/erraggy/dirattrs/geometry"
)

// Option is a function that configures an Engine.
type Option func(*engineConfig) error

// engineConfig holds configuration for an Engine
type engineConfig struct {
	logger    Logger
	precision geometry.Precision
	dumps     bool
}

func applyOptions(opts ...Option) (*engineConfig, error) {
	cfg := &engineConfig{
		logger:    NopLogger{},
		precision: geometry.Floating,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger that receives mismatch diagnostics.
// A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(cfg *engineConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithSlogLogger is a convenience for WithLogger(NewSlogAdapter(l)).
func WithSlogLogger(l *slog.Logger) Option {
	return WithLogger(NewSlogAdapter(l))
}

// WithPrecision sets the precision model applied to merged geometries as a
// scale factor (e.g. 1000 rounds to millimetres when units are metres).
// Zero keeps full precision.
func WithPrecision(scale float64) Option {
	return func(cfg *engineConfig) error {
		if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			return &daerrors.ConfigError{Option: "precision", Value: scale, Message: "must be a finite scale factor >= 0"}
		}
		cfg.precision = geometry.Precision(scale)
		return nil
	}
}

// WithFeatureDumps adds full dumps of both features to every mismatch
// diagnostic. Dumps are only rendered when a mismatch is logged.
func WithFeatureDumps(enabled bool) Option {
	return func(cfg *engineConfig) error {
		cfg.dumps = enabled
		return nil
	}
}
