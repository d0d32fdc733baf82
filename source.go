package realip

// Source identifies which piece of evidence produced a resolved address.
//
// Exactly one Source is reported per resolution, and fallback degrades
// gracefully: Forwarded, then the forwarded-for chain, then the real-IP
// header, then the socket address.
type Source int

const (
	// SourceForwarded resolves from the RFC 7239 Forwarded header.
	SourceForwarded Source = iota + 1
	// SourceXForwardedFor resolves from the forwarded-for chain header.
	SourceXForwardedFor
	// SourceXRealIP resolves from the single-value real-IP header.
	SourceXRealIP
	// SourceSocketAddr resolves from the connection's socket address.
	SourceSocketAddr
)

// String returns a human-readable label for display and logging.
func (s Source) String() string {
	switch s {
	case SourceForwarded:
		return "'Forwarded' header"
	case SourceXForwardedFor:
		return "'X-Forwarded-For' header"
	case SourceXRealIP:
		return "'X-Real-Ip' header"
	case SourceSocketAddr:
		return "Socket address"
	default:
		return "unknown"
	}
}

// Label returns the snake_case identifier used for metric and log labels.
func (s Source) Label() string {
	switch s {
	case SourceForwarded:
		return "forwarded"
	case SourceXForwardedFor:
		return "x_forwarded_for"
	case SourceXRealIP:
		return "x_real_ip"
	case SourceSocketAddr:
		return "socket_addr"
	default:
		return "unknown"
	}
}
