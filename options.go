package realip

import (
	"fmt"
	"net/textproto"
	"reflect"
	"strings"
)

const (
	// DefaultForwardedForHeader is the chain header inspected by default.
	//
	// Upstream proxies that rewrite X-Forwarded-For commonly preserve the
	// original chain under this name; the name is a deployment contract and
	// must only change together with proxy configuration.
	DefaultForwardedForHeader = "X-Original-Forwarded-For"

	// DefaultRealIPHeader is the single-value real-IP header inspected by
	// default.
	DefaultRealIPHeader = "X-Real-Ip"

	// forwardedHeaderName is the fixed RFC 7239 header name.
	forwardedHeaderName = "Forwarded"
)

// Option configures a Resolver.
//
// Construct options using package-provided option builder functions.
type Option func(*config) error

// config holds resolver configuration state. It is mutated by Option
// functions during construction and frozen afterwards.
type config struct {
	forwardedForHeader string
	realIPHeader       string
	useForwarded       bool

	logger  Logger
	metrics Metrics
}

// WithForwardedForHeader renames the chain header inspected by the
// forwarded-for candidate. The source tag remains SourceXForwardedFor
// regardless of the configured name.
func WithForwardedForHeader(name string) Option {
	return func(c *config) error {
		canonical, err := canonicalHeaderName(name)
		if err != nil {
			return fmt.Errorf("forwarded-for header: %w", err)
		}

		c.forwardedForHeader = canonical
		return nil
	}
}

// WithRealIPHeader renames the single-value header inspected by the real-IP
// candidate. The source tag remains SourceXRealIP regardless of the
// configured name.
func WithRealIPHeader(name string) Option {
	return func(c *config) error {
		canonical, err := canonicalHeaderName(name)
		if err != nil {
			return fmt.Errorf("real-ip header: %w", err)
		}

		c.realIPHeader = canonical
		return nil
	}
}

// WithForwardedHeader enables or disables the RFC 7239 Forwarded header as
// the first candidate, ahead of the forwarded-for chain. Disabled by default.
func WithForwardedHeader(enable bool) Option {
	return func(c *config) error {
		c.useForwarded = enable
		return nil
	}
}

// WithLogger sets the logger receiving diagnostic resolution steps.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets a concrete metrics implementation.
func WithMetrics(metrics Metrics) Option {
	return func(c *config) error {
		c.metrics = metrics
		return nil
	}
}

func canonicalHeaderName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("header name cannot be empty")
	}

	return textproto.CanonicalMIMEHeaderKey(name), nil
}

func defaultConfig() *config {
	return &config{
		forwardedForHeader: DefaultForwardedForHeader,
		realIPHeader:       DefaultRealIPHeader,
		logger:             noopLogger{},
		metrics:            noopMetrics{},
	}
}

func configFromOptions(opts ...Option) (*config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) validate() error {
	if c.forwardedForHeader == c.realIPHeader {
		return fmt.Errorf("forwarded-for and real-ip headers cannot both be %q", c.realIPHeader)
	}
	if isNilInterface(c.logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	if isNilInterface(c.metrics) {
		return fmt.Errorf("metrics cannot be nil")
	}

	return nil
}

func isNilInterface(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
