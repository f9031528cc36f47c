// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatMiB converts a byte count to whole mebibytes.
//
// Example: FormatMiB(1536 * 1024 * 1024) returns "1536 MiB"
func FormatMiB(bytes uint64) string {
	return fmt.Sprintf("%d MiB", bytes>>20)
}

// FormatUptime converts seconds since boot to a short human-readable form.
//
// Parameters:
//   - seconds: The uptime in seconds
//
// Returns:
//   - "N mins" below one hour
//   - "Hh Mm" below one day
//   - "Dd Hh Mm" otherwise
//
// Example: FormatUptime(90061) returns "1d 1h 1m"
func FormatUptime(seconds uint64) string {
	mins := seconds / 60
	if mins < 60 {
		return fmt.Sprintf("%d mins", mins)
	}

	hours := mins / 60
	mins %= 60
	if hours < 24 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}

	days := hours / 24
	hours %= 24
	return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
}

// capitalize upper-cases the first rune of s.
//
// Example: capitalize("void") returns "Void"
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// baseName returns the last path element of an executable path without
// touching the filesystem.
//
// Example: baseName("/usr/bin/zsh") returns "zsh"
func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// trimQuotes strips one pair of matching surrounding quotes.
func trimQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
