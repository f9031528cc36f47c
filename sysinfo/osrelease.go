package sysinfo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// releaseMarkers are checked in order when no release metadata is readable.
var releaseMarkers = []struct {
	path string
	name string
}{
	{"etc/arch-release", "Arch Linux"},
	{"etc/debian_version", "Debian Linux"},
	{"etc/redhat-release", "Red Hat Linux"},
}

// ParseOSRelease returns the distribution name from an os-release buffer.
// NAME wins; without it the ID is capitalized and suffixed with " Linux".
// It returns "" when neither key is present.
func ParseOSRelease(buf []byte) string {
	fields := [...]Field{
		{Key: "NAME", Kind: Text},
		{Key: "ID", Kind: Text},
	}
	Scan(buf, fields[:])

	if fields[0].Found {
		if name := strings.TrimSpace(trimQuotes(string(fields[0].Text))); name != "" {
			return name
		}
	}
	if fields[1].Found {
		if id := strings.TrimSpace(trimQuotes(string(fields[1].Text))); id != "" {
			return capitalize(id) + " Linux"
		}
	}
	return ""
}

// distributionName resolves the distribution name below root, walking
// os-release, lsb-release and the per-distribution marker files before
// settling on "Linux".
func distributionName(root string) string {
	var buf [ScanBufferSize]byte
	n, err := readFile(filepath.Join(root, "etc/os-release"), buf[:])
	if err == nil {
		if name := ParseOSRelease(buf[:n]); name != "" {
			return name
		}
		debugf("os-release has no NAME or ID")
	} else {
		debugf("os-release unreadable: %v", err)
	}

	if name := lsbDistribution(filepath.Join(root, "etc/lsb-release")); name != "" {
		return name
	}

	for _, m := range releaseMarkers {
		if _, err := os.Stat(filepath.Join(root, m.path)); err == nil {
			return m.name
		}
	}
	return "Linux"
}

// lsbDistribution reads the legacy lsb-release file, which is plain
// KEY=value shell syntax.
func lsbDistribution(path string) string {
	env, err := godotenv.Read(path)
	if err != nil {
		debugf("lsb-release unreadable: %v", err)
		return ""
	}
	if desc := strings.TrimSpace(env["DISTRIB_DESCRIPTION"]); desc != "" {
		return desc
	}
	if id := strings.TrimSpace(env["DISTRIB_ID"]); id != "" {
		return capitalize(id) + " Linux"
	}
	return ""
}

// OSLabel combines the kernel identity with the distribution name. Only
// Linux kernels use the distribution; other kernel families report their
// own name.
func OSLabel(u Uname, distro string) string {
	if u.Sysname == "Linux" {
		return strings.TrimSpace(distro + " " + u.Machine)
	}
	return strings.TrimSpace(u.Sysname + " " + u.Machine)
}
