package sysinfo

import (
	"fmt"
	"strings"
)

const coreMarker = "-Core"

// ParseCPUModel returns the first "model name" value of a /proc/cpuinfo
// buffer, or "" when there is none.
func ParseCPUModel(buf []byte) string {
	fields := [...]Field{{Key: "model name", Kind: Text}}
	if Scan(buf, fields[:]) == 0 {
		return ""
	}
	return strings.TrimSpace(string(fields[0].Text))
}

// FormatCPULabel builds the CPU line from the raw model name, the online
// core count and the maximum frequency in kHz (0 when unknown).
//
// A "-Core" marker preceded by a space-separated numeric run is treated as
// a core-count suffix and dropped together with the number:
//
//	"AMD Ryzen 7 7800X3D 8-Core Processor" -> "AMD Ryzen 7 7800X3D"
//
// Otherwise only the text from the marker onwards is dropped.
func FormatCPULabel(model string, cores int, freqKHz uint64) string {
	model = strings.TrimSpace(model)
	if model == "" {
		return fmt.Sprintf("Unknown CPU (%d cores)", cores)
	}

	if idx := strings.Index(model, coreMarker); idx >= 0 {
		prefix := model[:idx]
		model = prefix
		if sp := strings.LastIndexByte(prefix, ' '); sp >= 0 && isDigits(prefix[sp+1:]) {
			model = prefix[:sp]
		}
		model = strings.TrimSpace(model)
	}

	label := fmt.Sprintf("%s (%d)", model, cores)
	if freqKHz > 0 {
		label += fmt.Sprintf(" @ %.3fGHz", float64(freqKHz)/1_000_000)
	}
	return label
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
