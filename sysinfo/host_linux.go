//go:build linux

package sysinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sys/unix"
)

// systemHost answers Host queries with direct system calls.
type systemHost struct{}

func (systemHost) Uname() (Uname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Uname{}, fmt.Errorf("uname: %w", err)
	}
	return Uname{
		Sysname: unix.ByteSliceToString(u.Sysname[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}

func (systemHost) Hostname() (string, error) {
	return os.Hostname()
}

func (systemHost) Sysinfo() (SysStats, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return SysStats{}, fmt.Errorf("sysinfo: %w", err)
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	var uptime uint64
	if si.Uptime > 0 {
		uptime = uint64(si.Uptime)
	}
	return SysStats{
		UptimeSeconds: uptime,
		TotalRAM:      uint64(si.Totalram) * unit,
		FreeRAM:       uint64(si.Freeram) * unit,
	}, nil
}

// NumCPU returns the number of online logical CPUs.
func (systemHost) NumCPU() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
