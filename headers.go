package realip

import "unicode/utf8"

// Headers provides read-only access to request header values by name.
//
// Names are requested in canonical MIME format (for example
// "X-Original-Forwarded-For"); implementations backed by case-sensitive maps
// must normalize accordingly. Implementations should return one slice entry
// per received header line, in wire order.
//
// net/http's http.Header satisfies this interface directly. The resolver
// never mutates the underlying headers.
type Headers interface {
	Values(name string) []string
}

// HeadersFunc adapts a function to the Headers interface.
type HeadersFunc func(name string) []string

// Values implements Headers.
func (f HeadersFunc) Values(name string) []string {
	if f == nil {
		return nil
	}

	return f(name)
}

// headerValues returns the values for name that are valid UTF-8.
//
// Values carrying invalid byte sequences are indistinguishable from absent
// ones: they are dropped here so no candidate ever sees undecodable text.
func headerValues(h Headers, name string) []string {
	if h == nil {
		return nil
	}

	values := h.Values(name)
	for i, v := range values {
		if utf8.ValidString(v) {
			continue
		}

		// Rare path: rebuild without the undecodable values.
		filtered := make([]string, 0, len(values)-1)
		filtered = append(filtered, values[:i]...)
		for _, rest := range values[i+1:] {
			if utf8.ValidString(rest) {
				filtered = append(filtered, rest)
			}
		}
		return filtered
	}

	return values
}
