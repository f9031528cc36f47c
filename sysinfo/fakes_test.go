package sysinfo

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// fakeRunner answers commands from a table keyed by "name arg1 arg2...".
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	panics  map[string]bool
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, bool) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	if f.panics[name] {
		panic("boom: " + key)
	}
	out, ok := f.outputs[key]
	return out, ok
}

func (f *fakeRunner) called(prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

type fakeHost struct {
	uname    Uname
	unameErr error
	hostname string
	stats    SysStats
	statsErr error
	cpus     int
}

func (h fakeHost) Uname() (Uname, error) { return h.uname, h.unameErr }
func (h fakeHost) Hostname() (string, error) { return h.hostname, nil }
func (h fakeHost) Sysinfo() (SysStats, error) { return h.stats, h.statsErr }
func (h fakeHost) NumCPU() int { return h.cpus }

var errFake = errors.New("fake failure")

func envFrom(vals map[string]string) *EnvCache {
	return NewEnvCache(func(name string) (string, bool) {
		v, ok := vals[name]
		return v, ok
	})
}
