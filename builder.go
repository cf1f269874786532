package goSession

import (
	"context"
	"errors"
	"log/slog"
)

// Builder assembles a [SessionInterface]. Construction is allocation-only;
// the single I/O step is [Backend.Create] during Build, so the backend client
// exists before the first request rather than being created lazily on the hot
// path.
type Builder struct {
	config  Config
	backend Backend
	logger  *slog.Logger
	metrics bool
	built   bool
}

// New returns a Builder seeded with the default configuration.
func New() *Builder {
	return &Builder{config: defaultConfig(), metrics: true}
}

// WithConfig replaces the configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithBackend sets the session [Backend]. Required.
func (b *Builder) WithBackend(backend Backend) *Builder {
	b.backend = backend
	return b
}

// WithLogger sets the logger used for rejection warnings. Defaults to
// [slog.Default].
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithMetricsEnabled toggles the in-process counters. Enabled by default.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.metrics = enabled
	return b
}

// Build validates the configuration, initializes the backend, and returns the
// immutable engine. A missing secret key while signing is enabled fails here,
// fast, rather than producing unsigned or broken cookies later.
func (b *Builder) Build(ctx context.Context) (*SessionInterface, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	b.built = true

	if b.backend == nil {
		return nil, ErrMissingBackend
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	var signer *Signer
	if b.config.UseSigner {
		var err error
		signer, err = NewSigner([]byte(b.config.SecretKey))
		if err != nil {
			return nil, err
		}
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := b.backend.Create(ctx); err != nil {
		return nil, err
	}

	return &SessionInterface{
		config:  b.config,
		backend: b.backend,
		signer:  signer,
		codec:   Codec{},
		logger:  logger,
		metrics: newMetrics(b.metrics),
	}, nil
}
