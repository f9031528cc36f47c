package sysinfo

import (
	"os"
	"sync"
)

// envWhitelist lists the only environment variables the collector reads.
var envWhitelist = []string{
	"XDG_CURRENT_DESKTOP",
	"XDG_SESSION_TYPE",
	"SHELL",
	"TERM",
	"TERM_PROGRAM",
	"WAYLAND_DISPLAY",
	"DISPLAY",
	"DESKTOP_SESSION",
	"GTK_THEME",
	"ICON_THEME",
	"USER",
	"HOME",
}

// EnvCache is a read-only snapshot of the whitelisted environment
// variables. It is safe for concurrent use once built.
type EnvCache struct {
	vals map[string]string
}

// NewEnvCache captures the whitelisted variables through lookup.
func NewEnvCache(lookup func(string) (string, bool)) *EnvCache {
	vals := make(map[string]string, len(envWhitelist))
	for _, name := range envWhitelist {
		if v, ok := lookup(name); ok {
			vals[name] = v
		}
	}
	return &EnvCache{vals: vals}
}

var (
	processEnv     *EnvCache
	processEnvOnce sync.Once
)

// ProcessEnv returns the process-wide cache, building it on first use.
func ProcessEnv() *EnvCache {
	processEnvOnce.Do(func() {
		processEnv = NewEnvCache(os.LookupEnv)
	})
	return processEnv
}

// Get returns the cached value of name, or def when it is unset or empty.
func (e *EnvCache) Get(name, def string) string {
	if v := e.vals[name]; v != "" {
		return v
	}
	return def
}
