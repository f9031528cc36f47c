// Package render lays out a logo and the system information side by side.
// The logo rows are printed verbatim with their embedded color sequences;
// the info column is aligned on the logo's widest row.
package render

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"tuxfetch/ascii"
	"tuxfetch/sysinfo"
)

const (
	escape = '\x1b'
	reset  = sysinfo.ColorReset
)

// DefaultGap is the number of columns between the logo and the info text.
const DefaultGap = 2

// Options controls Render.
type Options struct {
	// Gap is the number of spaces between logo and info columns
	Gap int
	// Color disables every escape sequence when false
	Color bool
}

// InfoLines builds the info column: the identity header, a divider and one
// "Label: value" line per field.
func InfoLines(s sysinfo.Snapshot) []string {
	header := s.Username + "@" + s.Hostname
	return []string{
		header,
		strings.Repeat("-", utf8.RuneCountInString(header)),
		"OS: " + s.OSName,
		"Kernel: " + s.KernelRelease,
		"Uptime: " + s.Uptime(),
		"Shell: " + s.Shell,
		"Resolution: " + s.Resolution,
		"DE: " + s.Desktop,
		"WM: " + s.WindowManager,
		"Theme: " + s.Theme,
		"Icons: " + s.IconTheme,
		"Terminal: " + s.Terminal,
		"CPU: " + s.CPU,
		"Memory: " + s.Memory(),
	}
}

// Render writes one output row per logo or info line, whichever is longer.
//
// The color that is active at the end of a logo row carries over into the
// next one, as logos rely on that. Info labels end with a reset, so the
// active color is re-emitted after the info text whenever more logo rows
// follow.
func Render(w io.Writer, entry ascii.Entry, info []string, opts Options) error {
	bw := bufio.NewWriter(w)
	art := entry.Lines()
	rows := max(len(art), len(info))
	column := entry.MaxWidth + opts.Gap

	var sb strings.Builder
	active := ""
	for i := 0; i < rows; i++ {
		sb.Reset()

		var line string
		if i < len(art) {
			line = art[i]
		}
		var width int
		width, active = scanLine(line, active)
		sb.WriteString(line)
		if pad := column - width; pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}

		if i < len(info) {
			sb.WriteString(decorate(i, info[i], entry.Accent))
		}
		if i+1 < len(art) && active != "" {
			sb.WriteString(active)
		}
		if i == rows-1 {
			sb.WriteString(reset)
		}

		out := sb.String()
		if !opts.Color {
			out = ansi.Strip(out)
		}
		bw.WriteString(out)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// decorate colors one info row. Row 0 is the "user@host" header, row 1 the
// divider; every other row colors its label.
func decorate(row int, text, accent string) string {
	switch row {
	case 0:
		user, host, ok := strings.Cut(text, "@")
		if !ok {
			return accent + text + reset
		}
		return accent + user + reset + "@" + accent + host + reset
	case 1:
		return text
	}
	label, value, ok := strings.Cut(text, ": ")
	if !ok {
		return text
	}
	return accent + label + reset + ": " + value
}

// VisibleLen returns the terminal width of line, excluding escape
// sequences.
func VisibleLen(line string) int {
	w, _ := scanLine(line, "")
	return w
}

// scanLine measures the visible width of line and tracks the active color.
// active is the color in effect before the line; the returned color is the
// last non-reset sequence seen, or "" after a reset.
//
// An escape sequence starts at ESC and ends at its final byte (0x40-0x7E,
// other than the '[' introducer).
func scanLine(line, active string) (int, string) {
	width := 0
	inEscape := false
	start := 0
	for i, r := range line {
		if inEscape {
			if r >= 0x40 && r <= 0x7E && r != '[' {
				inEscape = false
				seq := line[start : i+1]
				if isReset(seq) {
					active = ""
				} else if r == 'm' {
					active = seq
				}
			}
			continue
		}
		if r == escape {
			inEscape = true
			start = i
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width, active
}

func isReset(seq string) bool {
	return seq == "\x1b[0m" || seq == "\x1b[m"
}
