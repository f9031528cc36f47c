package sysinfo

import (
	"context"
	"strings"
)

// shellVersion runs the shell named by path with --version and formats the
// result as "name version". Shells without a known parser, and any failed
// query, report the bare executable name.
func shellVersion(ctx context.Context, run Runner, path string) string {
	name := baseName(path)

	var parse func(string) string
	switch name {
	case "zsh":
		parse = parseZshVersion
	case "bash":
		parse = parseBashVersion
	case "fish":
		parse = parseFishVersion
	default:
		return name
	}

	out, ok := run.Run(ctx, name, "--version")
	if !ok {
		return name
	}
	if v := parse(firstLine(out)); v != "" {
		return name + " " + v
	}
	return name
}

// parseZshVersion handles "zsh 5.9 (x86_64-pc-linux-gnu)".
func parseZshVersion(line string) string {
	i := strings.Index(line, "zsh ")
	if i < 0 {
		return ""
	}
	rest := line[i+len("zsh "):]
	if j := strings.IndexByte(rest, ' '); j >= 0 {
		return rest[:j]
	}
	return ""
}

// parseBashVersion handles "GNU bash, version 5.2.26(1)-release (x86_64-pc-linux-gnu)".
func parseBashVersion(line string) string {
	i := strings.Index(line, "version ")
	if i < 0 {
		return ""
	}
	rest := line[i+len("version "):]
	if j := strings.IndexAny(rest, "-("); j >= 0 {
		return strings.TrimSpace(rest[:j])
	}
	if f := strings.Fields(rest); len(f) > 0 {
		return f[0]
	}
	return ""
}

// parseFishVersion handles "fish, version 3.7.1".
func parseFishVersion(line string) string {
	i := strings.Index(line, "version ")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(line[i+len("version "):])
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
