// Package realip determines the originating client address of an inbound
// connection that may have traversed one or more reverse proxies.
//
// Proxies rewrite the transport-level source address of a connection, so the
// socket address alone is often a proxy, not the client. The resolver inspects
// a small set of proxy-supplied headers in a fixed priority order and falls
// back to the socket address when no header yields a usable address:
//
//  1. The standardized RFC 7239 Forwarded header (opt-in, see
//     WithForwardedHeader). The first for= value in the chain is used.
//  2. A forwarded-for chain header (X-Original-Forwarded-For by default),
//     a comma-separated list each traversed proxy appends to. The last entry
//     is the one added by the nearest hop and is the one selected.
//  3. A single-value real-IP header (X-Real-Ip by default).
//  4. The socket address of the connection itself.
//
// Resolution is total: it never fails and never returns an error. Absent,
// empty, malformed, or non-UTF-8 header values make a candidate fall through
// to the next one, and the socket address guarantees a result. The returned
// Source tag reports which piece of evidence produced the address.
//
// # Basic Usage
//
//	resolver, err := realip.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
//	    resolved := resolver.ResolveRequest(r)
//	    log.Printf("telemetry from %s (via %s)", resolved.IP, resolved.Source)
//	})
//
// Outside of net/http, use Resolve with any Headers implementation:
//
//	resolved := resolver.Resolve(ctx, remoteAddrPort, headers)
//
// # Header Names
//
// The inspected header names are a deployment contract with the upstream
// proxies. Deployments whose edge emits the plain X-Forwarded-For header, or
// a vendor-specific one, can rename the inspected headers without changing
// evaluation semantics:
//
//	resolver, err := realip.New(
//	    realip.WithForwardedForHeader("X-Forwarded-For"),
//	)
//
// # Observability
//
// Diagnostic logging and metrics are injectable and disabled by default, so
// resolution stays a pure function over its inputs. The Logger interface
// mirrors slog, so *slog.Logger can be passed directly. A Prometheus-backed
// Metrics implementation is available in the prometheus subpackage.
//
//	resolver, err := realip.New(
//	    realip.WithLogger(slog.Default()),
//	    realip.WithMetrics(metrics),
//	)
//
// # Security Considerations
//
// Header content is attacker-controllable. The resolver reports provenance
// via the Source tag but performs no trust-chain validation; the resolved
// address is suitable for logging, rate limiting, and geolocation, and must
// not be used for authorization decisions without corroboration.
//
// # Thread Safety
//
// Resolver instances are stateless after construction and safe for concurrent
// use. They are typically created once at application startup and shared
// across all request handlers.
package realip
