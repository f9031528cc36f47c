// Package sysinfo collects machine telemetry from the kernel's pseudo-files,
// a handful of system calls and a few desktop query tools. It defines the
// Snapshot produced by one collection run and the scanners and decoders used
// to fill it.
package sysinfo

import (
	"fmt"
	"os"
)

// Unknown is the sentinel reported for any field whose source is absent or
// could not be parsed.
const Unknown = "Unknown"

// ColorReset is the ANSI sequence that clears every color attribute.
const ColorReset = "\033[0m"

// DebugEnv is the environment variable that enables debug diagnostics on
// stderr.
const DebugEnv = "TUXFETCH_DEBUG"

// Snapshot is the result of one collection run. It is built once by
// Collector.Collect and not modified afterwards.
type Snapshot struct {
	// Username is the login name shown in the identity header
	Username string

	// Hostname is the machine's network name
	Hostname string

	// OSName is the distribution (or kernel family) name plus architecture
	OSName string

	// KernelRelease is the kernel release string from uname
	KernelRelease string

	// UptimeSeconds is the time since boot
	UptimeSeconds uint64

	// Shell is the login shell, with its version when it could be detected
	Shell string

	// Terminal is the terminal identifier
	Terminal string

	// Desktop is the desktop environment name
	Desktop string

	// WindowManager is derived from the desktop and session type
	WindowManager string

	// Theme is the GTK (or KDE widget) theme name
	Theme string

	// IconTheme is the icon theme name
	IconTheme string

	// Resolution lists the resolution of every connected display
	Resolution string

	// CPU is the processor model, online core count and max frequency
	CPU string

	// MemoryUsedBytes and MemoryTotalBytes describe physical memory
	MemoryUsedBytes  uint64
	MemoryTotalBytes uint64
}

// Uptime returns the formatted uptime.
func (s Snapshot) Uptime() string {
	return FormatUptime(s.UptimeSeconds)
}

// Memory returns the formatted "used / total" memory label.
func (s Snapshot) Memory() string {
	return FormatMiB(s.MemoryUsedBytes) + " / " + FormatMiB(s.MemoryTotalBytes)
}

// debugf prints a diagnostic line to stderr when DebugEnv is set.
func debugf(format string, args ...any) {
	if os.Getenv(DebugEnv) == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "tuxfetch debug: "+format+"\n", args...)
}
