// FILE: lixenwraith/tinylog/compat/builder.go
// Package compat routes framework logging through a tinylog.Logger.
//
// Adapters built from one Builder share a single logger, hence one threshold, one fixed
// render buffer, one lock and one sink: gnet, fasthttp and zap lines interleave only at
// line boundaries and SetLevel on the logger gates all three at once.
package compat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/tinylog"
)

// Builder creates gnet, fasthttp and zap adapters over one shared tinylog.Logger.
// The logger is either supplied or created on the first Build call and reused afterwards.
type Builder struct {
	logger    *tinylog.Logger
	cfg       *tinylog.Config
	overrides []string
	owned     bool // logger created here, released by Shutdown
	err       error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger shares an existing, initialized logger. WithConfig and WithOverrides are ignored.
func (b *Builder) WithLogger(l *tinylog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("tinylog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig sets the base configuration of a logger created by the builder
func (b *Builder) WithConfig(cfg *tinylog.Config) *Builder {
	b.cfg = cfg
	return b
}

// WithOverrides adds "key=value" settings applied on top of the base configuration
func (b *Builder) WithOverrides(overrides ...string) *Builder {
	b.overrides = append(b.overrides, overrides...)
	return b
}

// getLogger resolves the shared logger, creating and initializing it once
func (b *Builder) getLogger() (*tinylog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.logger != nil {
		return b.logger, nil
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = tinylog.DefaultConfig()
	}

	if len(b.overrides) > 0 {
		cfg = cfg.Clone()
		if err := cfg.ApplyOverride(b.overrides...); err != nil {
			return nil, err
		}
	}

	l := tinylog.NewLogger()
	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	b.logger = l
	b.owned = true
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildZap creates a *zap.Logger whose entries are rendered by the shared logger
func (b *Builder) BuildZap(opts ...zap.Option) (*zap.Logger, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return zap.New(NewZapCore(l), opts...), nil
}

// GetLogger returns the shared *tinylog.Logger
func (b *Builder) GetLogger() (*tinylog.Logger, error) {
	return b.getLogger()
}

// Shutdown releases a logger the builder created. A logger passed to WithLogger stays open.
func (b *Builder) Shutdown() error {
	if !b.owned || b.logger == nil {
		return nil
	}
	return b.logger.Shutdown()
}

// Usage:
//
//	b := compat.NewBuilder().WithOverrides("sink=stderr", "level=debug")
//	defer b.Shutdown()
//
//	gnetLogger, _ := b.BuildGnet()
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	server := &fasthttp.Server{Handler: handler}
//	server.Logger, _ = b.BuildFastHTTP()
//
//	zl, _ := b.BuildZap()
//	zl.Info("sensor ready", zap.Int("channel", 2))
