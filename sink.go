// FILE: lixenwraith/tinylog/sink.go
package tinylog

import (
	"io"
	"os"
	"path/filepath"
)

// SinkFunc adapts a function consuming rendered bytes to io.Writer.
// The slice aliases the logger buffer and must not be retained after the call.
type SinkFunc func(p []byte)

// Write forwards p and always reports success
func (f SinkFunc) Write(p []byte) (int, error) {
	f(p)
	return len(p), nil
}

// syncer is implemented by writers that can commit buffered data, e.g. *os.File
type syncer interface {
	Sync() error
}

// sink wraps the output writer, fixed for the lifetime of an initialized logger
type sink struct {
	w     io.Writer
	name  string
	owned io.Closer // Set when the logger opened the writer and must close it
}

// openSink resolves the writer for a config, a custom writer takes precedence over the named sink
func openSink(cfg *Config, custom io.Writer) (*sink, error) {
	if custom != nil {
		return &sink{w: custom, name: "custom"}, nil
	}

	switch cfg.Sink {
	case SinkStdout:
		return &sink{w: os.Stdout, name: SinkStdout}, nil
	case SinkStderr:
		return &sink{w: os.Stderr, name: SinkStderr}, nil
	case SinkDiscard:
		return &sink{w: io.Discard, name: SinkDiscard}, nil
	case SinkFile:
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmtErrorf("failed to create log directory for '%s': %w", cfg.FilePath, err)
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmtErrorf("failed to open log file '%s': %w", cfg.FilePath, err)
		}
		return &sink{w: f, name: SinkFile, owned: f}, nil
	default:
		return nil, fmtErrorf("invalid sink: '%s'", cfg.Sink)
	}
}

// sync commits buffered output; console streams are skipped as they do not support it on pipes and terminals
func (s *sink) sync() error {
	if s.name == SinkStdout || s.name == SinkStderr {
		return nil
	}
	if sy, ok := s.w.(syncer); ok {
		if err := sy.Sync(); err != nil {
			return fmtErrorf("failed to sync %s sink: %w", s.name, err)
		}
	}
	return nil
}

// close syncs and closes a writer the logger opened itself
func (s *sink) close() error {
	if s.owned == nil {
		return nil
	}
	var finalErr error
	if err := s.sync(); err != nil {
		finalErr = combineErrors(finalErr, err)
	}
	if err := s.owned.Close(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to close %s sink: %w", s.name, err))
	}
	return finalErr
}
