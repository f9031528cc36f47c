package sysinfo

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
)

// Collector gathers one Snapshot. Root prefixes every pseudo-file path
// ("/" in production) so the collector can run against a fixture tree.
type Collector struct {
	Root string
	Env  *EnvCache
	Host Host
	Run  Runner
}

// NewCollector returns a Collector wired to the running system.
func NewCollector() *Collector {
	return &Collector{
		Root: "/",
		Env:  ProcessEnv(),
		Host: systemHost{},
		Run:  ExecRunner{},
	}
}

// Collect acquires every Snapshot field. Shell, theme and icon detection
// run on their own goroutines, started before the synchronous work so the
// subprocess calls overlap with it. Collect never fails: absent or broken
// sources degrade to fallbacks and a panicking worker yields its fallback.
func (c *Collector) Collect(ctx context.Context) Snapshot {
	shellPath := c.Env.Get("SHELL", "/bin/sh")

	var (
		wg                  sync.WaitGroup
		shell, theme, icons string
	)
	spawn(&wg, &shell, baseName(shellPath), func() string {
		return shellVersion(ctx, c.Run, shellPath)
	})
	spawn(&wg, &theme, Unknown, func() string {
		return c.detectTheme(ctx, gtkThemeProbe)
	})
	spawn(&wg, &icons, Unknown, func() string {
		return c.detectTheme(ctx, iconThemeProbe)
	})

	snap := c.collectSync()

	wg.Wait()
	snap.Shell = shell
	snap.Theme = theme
	snap.IconTheme = icons
	return snap
}

// spawn runs fn on a new goroutine and stores its result in dst. A panic
// inside fn stores fallback instead.
func spawn(wg *sync.WaitGroup, dst *string, fallback string, fn func() string) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				debugf("worker panic, using %q: %v", fallback, r)
				*dst = fallback
			}
		}()
		*dst = fn()
	}()
}

func (c *Collector) collectSync() Snapshot {
	snap := Snapshot{
		Username: c.Env.Get("USER", "user"),
		Terminal: c.Env.Get("TERM_PROGRAM", c.Env.Get("TERM", Unknown)),
		Desktop:  c.Env.Get("XDG_CURRENT_DESKTOP", Unknown),
	}
	snap.WindowManager = windowManager(snap.Desktop, c.Env.Get("XDG_SESSION_TYPE", ""))

	hostname, err := c.Host.Hostname()
	if err != nil || hostname == "" {
		debugf("hostname: %v", err)
		hostname = Unknown
	}
	snap.Hostname = hostname

	u, err := c.Host.Uname()
	if err != nil {
		debugf("%v", err)
		u = Uname{Sysname: "Linux"}
	}
	snap.KernelRelease = u.Release
	if snap.KernelRelease == "" {
		snap.KernelRelease = Unknown
	}
	if u.Sysname == "Linux" {
		snap.OSName = OSLabel(u, distributionName(c.Root))
	} else {
		snap.OSName = OSLabel(u, "")
	}

	st, sysErr := c.Host.Sysinfo()
	if sysErr != nil {
		debugf("%v", sysErr)
	}
	snap.UptimeSeconds = st.UptimeSeconds

	snap.CPU = c.cpuLabel()

	mem, ok := c.memory()
	if !ok && sysErr == nil {
		debugf("meminfo unusable, falling back to sysinfo")
		mem = memoryFromSysinfo(st)
	}
	snap.MemoryUsedBytes = mem.UsedBytes
	snap.MemoryTotalBytes = mem.TotalBytes

	snap.Resolution = displayResolution(c.Root)
	return snap
}

func (c *Collector) memory() (MemoryStats, bool) {
	var buf [ScanBufferSize]byte
	n, err := readFile(filepath.Join(c.Root, "proc/meminfo"), buf[:])
	if err != nil {
		debugf("%v", err)
		return MemoryStats{}, false
	}
	return ParseMeminfo(buf[:n])
}

func (c *Collector) cpuLabel() string {
	var buf [ScanBufferSize]byte
	var model string
	if n, err := readFile(filepath.Join(c.Root, "proc/cpuinfo"), buf[:]); err == nil {
		model = ParseCPUModel(buf[:n])
	} else {
		debugf("%v", err)
	}

	var freq uint64
	if n, err := readFile(filepath.Join(c.Root, "sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"), buf[:]); err == nil {
		if v, _, ok := ParseUint(buf[:n]); ok {
			freq = v
		}
	}
	return FormatCPULabel(model, c.Host.NumCPU(), freq)
}

// windowManager infers the compositor from the desktop name. It only
// answers for graphical sessions.
func windowManager(desktop, session string) string {
	if session != "wayland" && session != "x11" {
		return Unknown
	}
	d := strings.ToUpper(desktop)
	switch {
	case strings.Contains(d, "GNOME"):
		return "Mutter"
	case strings.Contains(d, "KDE"):
		return "KWin"
	case strings.Contains(d, "XFCE") && session == "x11":
		return "Xfwm4"
	}
	return Unknown
}
