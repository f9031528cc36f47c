//go:build !linux

package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// systemHost answers Host queries through gopsutil on kernels without
// sysinfo(2).
type systemHost struct{}

func (systemHost) Uname() (Uname, error) {
	info, err := host.Info()
	if err != nil {
		return Uname{}, fmt.Errorf("host info: %w", err)
	}
	return Uname{
		Sysname: capitalize(info.OS),
		Release: info.KernelVersion,
		Machine: info.KernelArch,
	}, nil
}

func (systemHost) Hostname() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("host info: %w", err)
	}
	return info.Hostname, nil
}

func (systemHost) Sysinfo() (SysStats, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return SysStats{}, fmt.Errorf("virtual memory: %w", err)
	}
	uptime, err := host.Uptime()
	if err != nil {
		return SysStats{}, fmt.Errorf("uptime: %w", err)
	}
	return SysStats{
		UptimeSeconds: uptime,
		TotalRAM:      vm.Total,
		FreeRAM:       vm.Available,
	}, nil
}

func (systemHost) NumCPU() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
