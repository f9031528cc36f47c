package sysinfo

// Uname is the kernel identity.
type Uname struct {
	Sysname string
	Release string
	Machine string
}

// SysStats carries the values read from sysinfo(2), in bytes and seconds.
type SysStats struct {
	UptimeSeconds uint64
	TotalRAM      uint64
	FreeRAM       uint64
}

// Host provides the system-call level facts the collector cannot read from
// pseudo-files.
type Host interface {
	Uname() (Uname, error)
	Hostname() (string, error)
	Sysinfo() (SysStats, error)
	NumCPU() int
}
