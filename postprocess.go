package bcpost

import (
	"io"

	"github.com/bassclef/bcpost/internal/pipeline"
)

// Service applies the post-processing pipeline to pandoc HTML streams.
// The zero value is usable and equivalent to NewService().
type Service struct {
	cfg serviceConfig
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	webroot string
}

// Option configures a Service.
type Option func(*Service)

// WithWebroot sets the web root prefixed onto site-relative image URLs.
// The empty string is valid for sites served at the domain root.
func WithWebroot(webroot string) Option {
	return func(s *Service) {
		s.cfg.webroot = webroot
	}
}

// NewService returns a Service with the given options applied.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process reads pandoc HTML from r, applies every stage in order, and writes
// the corrected HTML to w. Input that matches no rewrite pattern passes
// through unchanged; the only errors are stream read/write failures.
func (s *Service) Process(r io.Reader, w io.Writer) error {
	return pipeline.New(s.cfg.webroot).Run(r, w)
}
