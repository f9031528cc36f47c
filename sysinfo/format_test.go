package sysinfo

import "testing"

func TestFormatMiB(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 MiB"},
		{512 * 1024, "0 MiB"},
		{1024 * 1024, "1 MiB"},
		{16000000 * 1024, "15625 MiB"},
	}

	for _, tc := range tests {
		if got := FormatMiB(tc.in); got != tc.want {
			t.Fatalf("FormatMiB(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{59, "0 mins"},
		{45 * 60, "45 mins"},
		{3*3600 + 5*60, "3h 5m"},
		{90061, "1d 1h 1m"},
	}

	for _, tc := range tests {
		if got := FormatUptime(tc.in); got != tc.want {
			t.Fatalf("FormatUptime(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("void"); got != "Void" {
		t.Fatalf("capitalize failed: got %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Fatalf("capitalize empty failed: got %q", got)
	}
}

func TestTrimQuotes(t *testing.T) {
	if got := trimQuotes(`"Arch Linux"`); got != "Arch Linux" {
		t.Fatalf("trimQuotes double failed: got %q", got)
	}
	if got := trimQuotes("'Adwaita'"); got != "Adwaita" {
		t.Fatalf("trimQuotes single failed: got %q", got)
	}
	if got := trimQuotes(`"unbalanced`); got != `"unbalanced` {
		t.Fatalf("trimQuotes unbalanced failed: got %q", got)
	}
}
