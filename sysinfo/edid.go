package sysinfo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EDIDSize is the length of the EDID base block.
const EDIDSize = 128

var edidHeader = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// Offsets inside the first detailed timing descriptor (which starts at
// byte 54 of the base block).
const (
	edidHActiveLo = 56
	edidHActiveHi = 58 // upper nibble
	edidVActiveLo = 59
	edidVActiveHi = 61 // upper nibble
)

// Resolution is a display's preferred mode.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// DecodeEDID extracts the preferred resolution from an EDID block. It
// reports false for anything that is not usable: short input, a bad header
// or a zero dimension.
//
// Both dimensions are 12-bit values whose high nibble lives in the upper
// half of a shared byte: byte 58 for the width, byte 61 for the height.
func DecodeEDID(b []byte) (Resolution, bool) {
	if len(b) < EDIDSize || !bytes.Equal(b[:len(edidHeader)], edidHeader[:]) {
		return Resolution{}, false
	}

	w := int(b[edidHActiveHi]&0xF0)<<4 | int(b[edidHActiveLo])
	h := int(b[edidVActiveHi]&0xF0)<<4 | int(b[edidVActiveLo])
	if w == 0 || h == 0 {
		return Resolution{}, false
	}
	return Resolution{Width: w, Height: h}, true
}

// displayResolution decodes the EDID of every connected DRM connector
// under root and joins the results. Connectors are visited in name order.
func displayResolution(root string) string {
	drm := filepath.Join(root, "sys/class/drm")
	entries, err := os.ReadDir(drm)
	if err != nil {
		debugf("drm: %v", err)
		return Unknown
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "card") && strings.Contains(name, "-") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var found []string
	for _, name := range names {
		dir := filepath.Join(drm, name)
		status, err := os.ReadFile(filepath.Join(dir, "status"))
		if err != nil || strings.TrimSpace(string(status)) != "connected" {
			continue
		}
		edid, err := os.ReadFile(filepath.Join(dir, "edid"))
		if err != nil {
			debugf("drm %s: %v", name, err)
			continue
		}
		res, ok := DecodeEDID(edid)
		if !ok {
			debugf("drm %s: no usable EDID (%d bytes)", name, len(edid))
			continue
		}
		found = append(found, res.String())
	}

	if len(found) == 0 {
		return Unknown
	}
	return strings.Join(found, ", ")
}
