package raster

import "go.uber.org/zap"

// Option is a functional option for configuring a render via Render or
// RenderToFile.
type Option func(*renderConfig)

type renderConfig struct {
	logger        *zap.Logger
	appendixPaths []string
	creator       string
}

// WithLogger sets the structured logger used for per-page render progress.
// Rendering is silent by default.
func WithLogger(l *zap.Logger) Option {
	return func(c *renderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAppendix appends every page of an existing PDF file after the
// document's own pages. May be given multiple times; appendices are merged
// in the order supplied.
func WithAppendix(path string) Option {
	return func(c *renderConfig) {
		c.appendixPaths = append(c.appendixPaths, path)
	}
}

// WithCreator sets the Creator field of the PDF's document information
// dictionary.
func WithCreator(creator string) Option {
	return func(c *renderConfig) {
		c.creator = creator
	}
}

func newRenderConfig(opts ...Option) *renderConfig {
	cfg := &renderConfig{
		logger:  zap.NewNop(),
		creator: "reportkit",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
