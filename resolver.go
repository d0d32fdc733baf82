package realip

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
)

// Resolved is the outcome of a single resolution: the best-guess client
// address and the evidence that produced it.
//
// A Resolved value is produced fresh per call and never stored by the
// resolver.
type Resolved struct {
	IP     netip.Addr
	Source Source
}

// Resolver determines the originating client address of a proxied connection
// from a socket address and request headers.
//
// Resolver instances are safe for concurrent reuse.
type Resolver struct {
	config *config
}

// New creates a Resolver from zero or more Option builders.
func New(opts ...Option) (*Resolver, error) {
	cfg, err := configFromOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Resolver{config: cfg}, nil
}

// Resolve returns the best-guess client address for a connection.
//
// Candidates are evaluated in priority order and the first usable one wins:
// the Forwarded header when enabled, the forwarded-for chain header, the
// real-IP header, and finally the socket address. Resolution is total; it
// never fails, and the socket address acts as the safety net.
//
// headers may be nil, in which case only the socket address is consulted.
// The context is used for diagnostics only; resolution does not block and is
// not cancellable.
func (rv *Resolver) Resolve(ctx context.Context, remote netip.AddrPort, headers Headers) Resolved {
	if ctx == nil {
		ctx = context.Background()
	}

	if rv.config.useForwarded {
		if ip, ok := rv.forwardedCandidate(ctx, headers); ok {
			return rv.resolved(ctx, ip, SourceForwarded)
		}
	}

	if ip, ok := rv.forwardedForCandidate(ctx, headers); ok {
		return rv.resolved(ctx, ip, SourceXForwardedFor)
	}

	if ip, ok := rv.realIPCandidate(ctx, headers); ok {
		return rv.resolved(ctx, ip, SourceXRealIP)
	}

	return rv.resolved(ctx, normalizeIP(remote.Addr()), SourceSocketAddr)
}

// ResolveRequest resolves the client address for an http.Request.
//
// The socket address is derived from r.RemoteAddr. An unparsable RemoteAddr
// cannot occur with net/http's server, but if it does the fallback address is
// the zero netip.Addr rather than a panic; resolution stays total.
func (rv *Resolver) ResolveRequest(r *http.Request) Resolved {
	if r == nil {
		return rv.Resolve(context.Background(), netip.AddrPort{}, nil)
	}

	var headers Headers
	if r.Header != nil {
		headers = r.Header
	}

	return rv.Resolve(r.Context(), parseSocketAddr(r.RemoteAddr), headers)
}

func (rv *Resolver) resolved(ctx context.Context, ip netip.Addr, source Source) Resolved {
	rv.config.metrics.RecordResolution(source.Label())
	rv.config.logger.InfoContext(ctx, "resolved client address",
		"ip", ip,
		"source", source.Label(),
	)

	return Resolved{IP: ip, Source: source}
}
