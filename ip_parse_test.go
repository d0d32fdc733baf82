package realip

import (
	"net/netip"
	"testing"
)

func TestParseCandidateIP(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantValid bool
	}{
		{
			name:      "plain IPv4",
			input:     "192.0.2.1",
			want:      "192.0.2.1",
			wantValid: true,
		},
		{
			name:      "surrounding whitespace",
			input:     "  192.0.2.1  ",
			want:      "192.0.2.1",
			wantValid: true,
		},
		{
			name:      "IPv4 with port",
			input:     "192.0.2.1:8080",
			want:      "192.0.2.1",
			wantValid: true,
		},
		{
			name:      "bracketed IPv6 with port",
			input:     "[2001:db8::1]:443",
			want:      "2001:db8::1",
			wantValid: true,
		},
		{
			name:      "bracketed IPv6 without port",
			input:     "[2001:db8::1]",
			want:      "2001:db8::1",
			wantValid: true,
		},
		{
			name:      "bare IPv6 without port parses directly",
			input:     "2001:db8::1",
			want:      "2001:db8::1",
			wantValid: true,
		},
		{
			name:      "quoted IPv4",
			input:     `"192.0.2.1"`,
			want:      "192.0.2.1",
			wantValid: true,
		},
		{
			name:      "quoted bracketed IPv6 with port",
			input:     `"[2001:db8:cafe::17]:4711"`,
			want:      "2001:db8:cafe::17",
			wantValid: true,
		},
		{
			name:      "empty string",
			input:     "",
			wantValid: false,
		},
		{
			name:      "whitespace only",
			input:     "   ",
			wantValid: false,
		},
		{
			name:      "empty quotes",
			input:     `""`,
			wantValid: false,
		},
		{
			name:      "not an address",
			input:     "not-an-ip",
			wantValid: false,
		},
		{
			name:      "obfuscated forwarded identifier",
			input:     "_gazonk",
			wantValid: false,
		},
		{
			name:      "unknown token",
			input:     "unknown",
			wantValid: false,
		},
		{
			name:      "hostname with port",
			input:     "example.com:443",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCandidateIP(tt.input)

			if got.IsValid() != tt.wantValid {
				t.Fatalf("parseCandidateIP(%q).IsValid() = %v, want %v", tt.input, got.IsValid(), tt.wantValid)
			}

			if !tt.wantValid {
				return
			}

			want := netip.MustParseAddr(tt.want)
			if got != want {
				t.Errorf("parseCandidateIP(%q) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestParseSocketAddr(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIP    string
		wantPort  uint16
		wantValid bool
	}{
		{
			name:      "IPv4 with port",
			input:     "203.0.113.9:54321",
			wantIP:    "203.0.113.9",
			wantPort:  54321,
			wantValid: true,
		},
		{
			name:      "bracketed IPv6 with port",
			input:     "[2001:db8::1]:443",
			wantIP:    "2001:db8::1",
			wantPort:  443,
			wantValid: true,
		},
		{
			name:      "bare IPv4 without port",
			input:     "203.0.113.9",
			wantIP:    "203.0.113.9",
			wantPort:  0,
			wantValid: true,
		},
		{
			name:      "bare IPv6 without port",
			input:     "2001:db8::1",
			wantIP:    "2001:db8::1",
			wantPort:  0,
			wantValid: true,
		},
		{
			name:      "empty",
			input:     "",
			wantValid: false,
		},
		{
			name:      "garbage",
			input:     "not-a-socket-addr",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSocketAddr(tt.input)

			if got.Addr().IsValid() != tt.wantValid {
				t.Fatalf("parseSocketAddr(%q) validity = %v, want %v", tt.input, got.Addr().IsValid(), tt.wantValid)
			}

			if !tt.wantValid {
				return
			}

			if want := netip.MustParseAddr(tt.wantIP); got.Addr() != want {
				t.Errorf("parseSocketAddr(%q).Addr() = %v, want %v", tt.input, got.Addr(), want)
			}
			if got.Port() != tt.wantPort {
				t.Errorf("parseSocketAddr(%q).Port() = %d, want %d", tt.input, got.Port(), tt.wantPort)
			}
		})
	}
}

func TestNormalizeIP(t *testing.T) {
	mapped := netip.MustParseAddr("::ffff:192.0.2.128")
	if got, want := normalizeIP(mapped), netip.MustParseAddr("192.0.2.128"); got != want {
		t.Errorf("normalizeIP(%v) = %v, want %v", mapped, got, want)
	}

	plain := netip.MustParseAddr("2001:db8::1")
	if got := normalizeIP(plain); got != plain {
		t.Errorf("normalizeIP(%v) = %v, want unchanged", plain, got)
	}
}

func TestLastChainEntry(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{
			name:   "single entry",
			values: []string{"203.0.113.1"},
			want:   "203.0.113.1",
		},
		{
			name:   "multi-hop chain selects last",
			values: []string{"203.0.113.1, 70.41.3.18, 150.172.238.178"},
			want:   "150.172.238.178",
		},
		{
			name:   "multiple header lines select last line",
			values: []string{"203.0.113.1", "70.41.3.18, 150.172.238.178"},
			want:   "150.172.238.178",
		},
		{
			name:   "trailing comma yields empty entry",
			values: []string{"203.0.113.1,"},
			want:   "",
		},
		{
			name:   "lone comma",
			values: []string{","},
			want:   "",
		},
		{
			name:   "whitespace trimmed",
			values: []string{" 203.0.113.1 ,  70.41.3.18  "},
			want:   "70.41.3.18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastChainEntry(tt.values); got != tt.want {
				t.Errorf("lastChainEntry(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
