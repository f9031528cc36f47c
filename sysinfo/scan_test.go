package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meminfoFixture = `MemTotal:       16000000 kB
MemFree:         8000000 kB
MemAvailable:    9500000 kB
Buffers:          200000 kB
Cached:          1000000 kB
SwapCached:        77777 kB
Active:          4000000 kB
Shmem:            500000 kB
ShmemHugePages:        0 kB
SReclaimable:     300000 kB
SUnreclaim:       100000 kB
`

func TestScan_NumbersAtLineStart(t *testing.T) {
	fields := []Field{{Key: "Cached"}, {Key: "SwapCached"}, {Key: "MemTotal"}}

	n := Scan([]byte(meminfoFixture), fields)

	require.Equal(t, 3, n)
	assert.Equal(t, uint64(1000000), fields[0].Num)
	assert.Equal(t, uint64(77777), fields[1].Num)
	assert.Equal(t, uint64(16000000), fields[2].Num)
}

func TestScan_SubstringKeyNeedsLineStart(t *testing.T) {
	// Cached only appears inside SwapCached here.
	buf := []byte("SwapCached: 12 kB\nMemTotal: 5 kB\n")
	fields := []Field{{Key: "Cached"}, {Key: "MemTotal"}}

	n := Scan(buf, fields)

	assert.Equal(t, 1, n)
	assert.False(t, fields[0].Found)
	assert.Zero(t, fields[0].Num)
	assert.Equal(t, uint64(5), fields[1].Num)
}

func TestScan_KeyMustBeFollowedBySeparator(t *testing.T) {
	buf := []byte("ShmemHugePages: 9 kB\nShmem: 3 kB\n")
	fields := []Field{{Key: "Shmem"}}

	Scan(buf, fields)

	assert.Equal(t, uint64(3), fields[0].Num)
}

func TestScan_MissingFieldsStayZero(t *testing.T) {
	fields := []Field{{Key: "MemTotal"}, {Key: "Nope"}, {Key: "Missing", Kind: Text}}

	n := Scan([]byte(meminfoFixture), fields)

	assert.Equal(t, 1, n)
	assert.Zero(t, fields[1].Num)
	assert.Nil(t, fields[2].Text)
}

func TestScan_TextFields(t *testing.T) {
	buf := []byte("processor\t: 0\nvendor_id\t: AuthenticAMD\nmodel name\t: AMD Ryzen 7 7800X3D 8-Core Processor  \r\n")
	fields := []Field{{Key: "model name", Kind: Text}, {Key: "processor"}}

	n := Scan(buf, fields)

	require.Equal(t, 2, n)
	assert.Equal(t, "AMD Ryzen 7 7800X3D 8-Core Processor", string(fields[0].Text))
	assert.Equal(t, uint64(0), fields[1].Num)
	assert.True(t, fields[1].Found)
}

func TestScan_EqualsSeparator(t *testing.T) {
	buf := []byte("PRETTY_NAME=\"Arch Linux\"\nNAME=\"Arch\"\nID=arch\n")
	fields := []Field{{Key: "NAME", Kind: Text}, {Key: "ID", Kind: Text}}

	Scan(buf, fields)

	assert.Equal(t, `"Arch"`, string(fields[0].Text))
	assert.Equal(t, "arch", string(fields[1].Text))
}

func TestScan_StopsWhenAllFound(t *testing.T) {
	// The second MemTotal line must never be read.
	buf := []byte("MemTotal: 1 kB\nMemTotal: 2 kB\n")
	fields := []Field{{Key: "MemTotal"}}

	Scan(buf, fields)

	assert.Equal(t, uint64(1), fields[0].Num)
}

func TestScan_Idempotent(t *testing.T) {
	buf := []byte(meminfoFixture)
	first := []Field{{Key: "MemFree"}, {Key: "Buffers"}}
	second := []Field{{Key: "MemFree"}, {Key: "Buffers"}}

	Scan(buf, first)
	Scan(buf, second)
	Scan(buf, second)

	assert.Equal(t, first, second)
}

func TestScan_EmptyAndTruncatedInput(t *testing.T) {
	fields := []Field{{Key: "MemTotal"}}
	assert.Equal(t, 0, Scan(nil, fields))
	assert.Equal(t, 0, Scan([]byte("MemTotal:"), fields))
	assert.Equal(t, 0, Scan([]byte("MemTotal:   kB\n"), fields))
	assert.Equal(t, 1, Scan([]byte("MemTotal: 42"), fields))
	assert.Equal(t, uint64(42), fields[0].Num)
}

func TestParseUint(t *testing.T) {
	v, n, ok := ParseUint([]byte("3600000\n"))
	require.True(t, ok)
	assert.Equal(t, uint64(3600000), v)
	assert.Equal(t, 7, n)

	_, _, ok = ParseUint([]byte("x1"))
	assert.False(t, ok)

	_, _, ok = ParseUint([]byte("99999999999999999999999"))
	assert.False(t, ok)
}
