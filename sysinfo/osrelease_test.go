package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOSRelease(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"quoted name", "PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\nNAME=\"Debian GNU/Linux\"\nID=debian\n", "Debian GNU/Linux"},
		{"bare name", "NAME=Gentoo\nID=gentoo\n", "Gentoo"},
		{"id fallback", "VERSION_ID=3.19\nID=alpine\n", "Alpine Linux"},
		{"quoted id", "ID=\"void\"\n", "Void Linux"},
		{"nothing", "PRETTY_NAME=\"x\"\nVERSION_ID=1\n", ""},
		{"no trailing newline", "NAME=\"Arch Linux\"", "Arch Linux"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseOSRelease([]byte(tc.in)))
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDistributionName(t *testing.T) {
	t.Run("os-release", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "etc/os-release"), "NAME=\"Fedora Linux\"\n")
		writeFile(t, filepath.Join(root, "etc/arch-release"), "")
		assert.Equal(t, "Fedora Linux", distributionName(root))
	})

	t.Run("lsb-release", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "etc/lsb-release"), "DISTRIB_ID=Ubuntu\nDISTRIB_RELEASE=22.04\nDISTRIB_DESCRIPTION=\"Ubuntu 22.04.4 LTS\"\n")
		assert.Equal(t, "Ubuntu 22.04.4 LTS", distributionName(root))
	})

	t.Run("marker files in order", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "etc/redhat-release"), "")
		writeFile(t, filepath.Join(root, "etc/debian_version"), "12.5\n")
		assert.Equal(t, "Debian Linux", distributionName(root))
	})

	t.Run("nothing", func(t *testing.T) {
		assert.Equal(t, "Linux", distributionName(t.TempDir()))
	})
}

func TestOSLabel(t *testing.T) {
	assert.Equal(t, "Arch Linux x86_64", OSLabel(Uname{Sysname: "Linux", Machine: "x86_64"}, "Arch Linux"))
	assert.Equal(t, "Darwin arm64", OSLabel(Uname{Sysname: "Darwin", Machine: "arm64"}, "ignored"))
}
