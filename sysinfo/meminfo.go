package sysinfo

// MemoryStats describes physical memory in bytes.
type MemoryStats struct {
	UsedBytes  uint64
	TotalBytes uint64
}

const (
	memTotal = iota
	memFree
	memBuffers
	memCached
	memSReclaimable
	memShmem
)

// ParseMeminfo extracts memory usage from a /proc/meminfo buffer. Values in
// the file are in kB. Used memory follows the free(1) convention:
//
//	used = total - free - buffers - cached - sreclaimable + shmem
//
// where the subtraction is clamped at zero before shmem is added back.
// It returns false when MemTotal is missing or zero.
func ParseMeminfo(buf []byte) (MemoryStats, bool) {
	fields := [...]Field{
		memTotal:        {Key: "MemTotal"},
		memFree:         {Key: "MemFree"},
		memBuffers:      {Key: "Buffers"},
		memCached:       {Key: "Cached"},
		memSReclaimable: {Key: "SReclaimable"},
		memShmem:        {Key: "Shmem"},
	}
	Scan(buf, fields[:])

	total := fields[memTotal].Num
	if total == 0 {
		return MemoryStats{}, false
	}

	nonUsed := fields[memFree].Num + fields[memBuffers].Num +
		fields[memCached].Num + fields[memSReclaimable].Num
	var used uint64
	if total > nonUsed {
		used = total - nonUsed
	}
	used += fields[memShmem].Num

	return MemoryStats{UsedBytes: used << 10, TotalBytes: total << 10}, true
}

// memoryFromSysinfo is the fallback used when /proc/meminfo is unusable.
func memoryFromSysinfo(st SysStats) MemoryStats {
	var used uint64
	if st.TotalRAM > st.FreeRAM {
		used = st.TotalRAM - st.FreeRAM
	}
	return MemoryStats{UsedBytes: used, TotalBytes: st.TotalRAM}
}
