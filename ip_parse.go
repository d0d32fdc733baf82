package realip

import (
	"net"
	"net/netip"
	"strings"
)

// parseCandidateIP extracts an IP address from the variable formats found in
// proxy headers. It handles:
//
//   - Leading/trailing whitespace: "  192.0.2.1  "
//   - Port suffixes: "192.0.2.1:8080" or "[2001:db8::1]:443"
//   - Quoted values: "\"192.0.2.1\"" (Forwarded quoted tokens)
//   - IPv6 brackets: "[2001:db8::1]"
//
// Port stripping relies on net.SplitHostPort rather than scanning for the
// last colon, so unbracketed IPv6 literals without a port parse directly
// instead of being truncated at their final group.
//
// Returns an invalid netip.Addr (IsValid() == false) when no address can be
// extracted.
func parseCandidateIP(s string) netip.Addr {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return netip.Addr{}
	}

	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}
	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		s = s[1 : len(s)-1]
	}

	ip, _ := netip.ParseAddr(s)
	return ip
}

// parseSocketAddr parses a transport-level "host:port" remote address as
// reported by net/http. A bare address without a port is accepted too.
//
// Returns an invalid netip.AddrPort when the address cannot be parsed; the
// transport layer normally guarantees this never happens.
func parseSocketAddr(remoteAddr string) netip.AddrPort {
	remoteAddr = strings.TrimSpace(remoteAddr)
	if remoteAddr == "" {
		return netip.AddrPort{}
	}

	if addrPort, err := netip.ParseAddrPort(remoteAddr); err == nil {
		return addrPort
	}

	if ip, err := netip.ParseAddr(remoteAddr); err == nil {
		return netip.AddrPortFrom(ip, 0)
	}

	return netip.AddrPort{}
}

// normalizeIP unmaps IPv4-mapped IPv6 addresses so 4-in-6 and plain IPv4
// forms of the same address compare equal.
func normalizeIP(ip netip.Addr) netip.Addr {
	if ip.Is4In6() {
		return ip.Unmap()
	}
	return ip
}

// lastChainEntry returns the trimmed last segment of a comma-separated proxy
// chain spread over one or more header lines.
//
// The nearest-hop proxy appends last, so the final segment is the most
// trusted entry. The segment may be empty (trailing comma); the caller's IP
// parser rejects it and resolution falls through, matching the
// take-last-then-parse behavior rather than searching backwards for a usable
// segment.
func lastChainEntry(values []string) string {
	last := values[len(values)-1]
	segments := strings.Split(last, ",")
	return strings.TrimSpace(segments[len(segments)-1])
}
