package realip

import (
	"context"
	"net/netip"
	"strings"
)

// forwardedCandidate evaluates the RFC 7239 Forwarded header. The first for=
// value in the chain identifies the original client.
func (rv *Resolver) forwardedCandidate(ctx context.Context, headers Headers) (netip.Addr, bool) {
	values := headerValues(headers, forwardedHeaderName)
	if len(values) == 0 {
		return netip.Addr{}, false
	}

	rv.config.logger.InfoContext(ctx, "processing Forwarded header",
		"value", strings.Join(values, ", "),
	)

	forValue, ok := firstForwardedFor(values)
	if !ok {
		return rv.candidateMiss(SourceForwarded)
	}

	ip := parseCandidateIP(forValue)
	if !ip.IsValid() {
		return rv.candidateMiss(SourceForwarded)
	}

	return normalizeIP(ip), true
}

// forwardedForCandidate evaluates the forwarded-for chain header. The last
// entry was appended by the nearest-hop proxy and is the one selected; if it
// does not parse, the candidate misses without retrying earlier entries,
// which are further from the server and easier to spoof.
func (rv *Resolver) forwardedForCandidate(ctx context.Context, headers Headers) (netip.Addr, bool) {
	values := headerValues(headers, rv.config.forwardedForHeader)
	if len(values) == 0 {
		return netip.Addr{}, false
	}

	rv.config.logger.InfoContext(ctx, "processing forwarded-for header",
		"header", rv.config.forwardedForHeader,
		"value", strings.Join(values, ", "),
	)

	entry := lastChainEntry(values)
	rv.config.logger.InfoContext(ctx, "selected last forwarded-for entry",
		"entry", entry,
	)

	ip := parseCandidateIP(entry)
	if !ip.IsValid() {
		return rv.candidateMiss(SourceXForwardedFor)
	}

	return normalizeIP(ip), true
}

// realIPCandidate evaluates the single-value real-IP header. The value is
// expected to be exactly one address with no port and no list, so it is
// parsed directly without port stripping.
func (rv *Resolver) realIPCandidate(ctx context.Context, headers Headers) (netip.Addr, bool) {
	values := headerValues(headers, rv.config.realIPHeader)
	if len(values) == 0 {
		return netip.Addr{}, false
	}

	rv.config.logger.InfoContext(ctx, "processing real-ip header",
		"header", rv.config.realIPHeader,
		"value", values[0],
	)

	ip, err := netip.ParseAddr(strings.TrimSpace(values[0]))
	if err != nil {
		return rv.candidateMiss(SourceXRealIP)
	}

	return normalizeIP(ip), true
}

func (rv *Resolver) candidateMiss(source Source) (netip.Addr, bool) {
	rv.config.metrics.RecordCandidateMiss(source.Label())
	return netip.Addr{}, false
}
