package realip

import (
	"errors"
	"fmt"
	"strings"
)

// errFoundFor stops a Forwarded scan once the first for parameter is found.
var errFoundFor = errors.New("found for parameter")

// firstForwardedFor extracts the first for= value from one or more RFC 7239
// Forwarded header values.
//
// Each proxy appends a comma-separated element such as
// "for=192.0.2.60;proto=http;by=203.0.113.43"; the first element carrying a
// for parameter identifies the original client. Parameter names are matched
// case-insensitively and quoted strings (including escapes) are supported.
//
// A malformed header value is reported as absent (ok == false); the returned
// value may still be a non-address token such as "_gazonk" or "unknown",
// which the caller's IP parser rejects.
func firstForwardedFor(values []string) (forwardedFor string, ok bool) {
	for _, value := range values {
		err := scanForwardedSegments(value, ',', func(element string) error {
			forValue, hasFor, elemErr := forwardedElementFor(element)
			if elemErr != nil {
				return elemErr
			}
			if !hasFor {
				return nil
			}

			forwardedFor = forValue
			return errFoundFor
		})
		if errors.Is(err, errFoundFor) {
			return forwardedFor, true
		}
		if err != nil {
			return "", false
		}
	}

	return "", false
}

// forwardedElementFor parses a single Forwarded element and returns its for
// parameter value when present.
//
// Additional parameters (by, proto, host, extensions) are allowed and
// ignored. Duplicate for parameters in one element are rejected.
func forwardedElementFor(element string) (forwardedFor string, hasFor bool, err error) {
	err = scanForwardedSegments(element, ';', func(param string) error {
		eq := strings.IndexByte(param, '=')
		if eq <= 0 {
			return fmt.Errorf("invalid forwarded parameter %q", param)
		}

		if !strings.EqualFold(strings.TrimSpace(param[:eq]), "for") {
			return nil
		}

		if hasFor {
			return fmt.Errorf("duplicate for parameter in element %q", element)
		}

		value, parseErr := parseForwardedForValue(param[eq+1:])
		if parseErr != nil {
			return parseErr
		}

		forwardedFor = value
		hasFor = true
		return nil
	})
	if err != nil {
		return "", false, err
	}

	return forwardedFor, hasFor, nil
}

// scanForwardedSegments splits value by delimiter, skipping delimiters inside
// quoted strings and honoring backslash escapes within them. Empty segments
// are skipped.
func scanForwardedSegments(value string, delimiter byte, onSegment func(string) error) error {
	start := 0
	inQuotes := false
	escaped := false

	emit := func(end int) error {
		segment := strings.TrimSpace(value[start:end])
		start = end + 1
		if segment == "" {
			return nil
		}
		return onSegment(segment)
	}

	for i := 0; i < len(value); i++ {
		switch {
		case escaped:
			escaped = false
		case value[i] == '\\' && inQuotes:
			escaped = true
		case value[i] == '"':
			inQuotes = !inQuotes
		case value[i] == delimiter && !inQuotes:
			if err := emit(i); err != nil {
				return err
			}
		}
	}

	if inQuotes {
		return fmt.Errorf("unterminated quoted string in %q", value)
	}

	return emit(len(value))
}

// parseForwardedForValue normalizes a for parameter value, resolving the
// quoted-string form when present.
func parseForwardedForValue(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty for value")
	}

	if value[0] == '"' {
		unquoted, err := unquoteForwardedValue(value)
		if err != nil {
			return "", err
		}
		value = strings.TrimSpace(unquoted)
		if value == "" {
			return "", fmt.Errorf("empty for value")
		}
	}

	return value, nil
}

// unquoteForwardedValue strips the surrounding quotes from a Forwarded
// quoted string and resolves backslash escapes.
func unquoteForwardedValue(value string) (string, error) {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return "", fmt.Errorf("invalid quoted string %q", value)
	}

	inner := value[1 : len(value)-1]

	var b strings.Builder
	b.Grow(len(inner))
	escaped := false

	for i := 0; i < len(inner); i++ {
		ch := inner[i]

		switch {
		case escaped:
			b.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return "", fmt.Errorf("unexpected quote in %q", value)
		default:
			b.WriteByte(ch)
		}
	}

	if escaped {
		return "", fmt.Errorf("unterminated escape in %q", value)
	}

	return b.String(), nil
}
