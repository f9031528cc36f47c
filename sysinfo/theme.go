package sysinfo

import (
	"context"
	"path/filepath"
	"strings"
)

// configKey is a KEY=value (or KEY: value) entry to look for in a file.
// Paths starting with "~/" are resolved against HOME, others against the
// collector root.
type configKey struct {
	path string
	key  string
}

// themeProbe describes one fallback chain: environment variable, then the
// desktop's own query tool, then configuration files.
type themeProbe struct {
	envVar       string
	gsettingsKey string
	kdeGroup     string
	kdeKey       string
	xfconfProp   string
	files        []configKey
}

var gtkThemeProbe = themeProbe{
	envVar:       "GTK_THEME",
	gsettingsKey: "gtk-theme",
	kdeGroup:     "KDE",
	kdeKey:       "widgetStyle",
	xfconfProp:   "/Net/ThemeName",
	files: []configKey{
		{"~/.gtkrc-2.0", "gtk-theme-name"},
		{"~/.config/gtk-3.0/settings.ini", "gtk-theme-name"},
		{"~/.config/gtk-4.0/settings.ini", "gtk-theme-name"},
		{"/etc/gtk-3.0/settings.ini", "gtk-theme-name"},
		{"/etc/gtk-4.0/settings.ini", "gtk-theme-name"},
	},
}

var iconThemeProbe = themeProbe{
	envVar:       "ICON_THEME",
	gsettingsKey: "icon-theme",
	kdeGroup:     "Icons",
	kdeKey:       "Theme",
	xfconfProp:   "/Net/IconThemeName",
	files: []configKey{
		{"~/.config/gtk-3.0/settings.ini", "gtk-icon-theme-name"},
		{"~/.config/gtk-4.0/settings.ini", "gtk-icon-theme-name"},
		{"/etc/gtk-3.0/settings.ini", "gtk-icon-theme-name"},
		{"/etc/gtk-4.0/settings.ini", "gtk-icon-theme-name"},
		{"~/.icons/default/index.theme", "Inherits"},
		{"/usr/share/icons/default/index.theme", "Inherits"},
	},
}

// detectTheme walks the probe's fallback chain and returns Unknown when
// every step comes up empty.
func (c *Collector) detectTheme(ctx context.Context, p themeProbe) string {
	if v := c.Env.Get(p.envVar, ""); v != "" {
		return v
	}

	desktop := strings.ToLower(c.Env.Get("XDG_CURRENT_DESKTOP", ""))
	if v := c.queryDesktop(ctx, desktop, p); v != "" {
		return v
	}

	home := c.Env.Get("HOME", "")
	var buf [ScanBufferSize]byte
	for _, f := range p.files {
		path, ok := resolveConfigPath(c.Root, home, f.path)
		if !ok {
			continue
		}
		n, err := readFile(path, buf[:])
		if err != nil {
			continue
		}
		if v := configValue(buf[:n], f.key); v != "" {
			return v
		}
	}
	return Unknown
}

func (c *Collector) queryDesktop(ctx context.Context, desktop string, p themeProbe) string {
	switch {
	case containsAny(desktop, "gnome", "budgie", "cinnamon", "unity"):
		if v, ok := c.Run.Run(ctx, "gsettings", "get", "org.gnome.desktop.interface", p.gsettingsKey); ok {
			return trimQuotes(v)
		}
	case strings.Contains(desktop, "kde"):
		for _, tool := range []string{"kreadconfig5", "kreadconfig"} {
			if v, ok := c.Run.Run(ctx, tool, "--group", p.kdeGroup, "--key", p.kdeKey); ok {
				return v
			}
		}
	case strings.Contains(desktop, "xfce"):
		if v, ok := c.Run.Run(ctx, "xfconf-query", "-c", "xsettings", "-p", p.xfconfProp); ok {
			return v
		}
	}
	return ""
}

// configValue returns the unquoted value of key in an ini, gtkrc or
// index.theme buffer.
func configValue(buf []byte, key string) string {
	fields := [...]Field{{Key: key, Kind: Text}}
	if Scan(buf, fields[:]) == 0 {
		return ""
	}
	return strings.TrimSpace(trimQuotes(string(fields[0].Text)))
}

func resolveConfigPath(root, home, path string) (string, bool) {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home == "" {
			return "", false
		}
		return filepath.Join(home, rest), true
	}
	return filepath.Join(root, path), true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
