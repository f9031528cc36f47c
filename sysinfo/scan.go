package sysinfo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ScanBufferSize is the size of the fixed buffers the pseudo-file readers
// scan. Every file read through readFile is truncated to it.
const ScanBufferSize = 4096

// FieldKind selects how the value after a key is parsed.
type FieldKind uint8

const (
	// Number parses a decimal integer in place.
	Number FieldKind = iota
	// Text takes the rest of the line, with trailing blanks removed.
	Text
)

// Field is one labelled value to extract with Scan. Key is matched only at
// the start of a line and must be followed by optional blanks and a ':' or
// '=' separator, so "Cached" never matches "SwapCached:" and "NAME" never
// matches "PRETTY_NAME=".
type Field struct {
	Key  string
	Kind FieldKind

	// Num holds the parsed value of a Number field.
	Num uint64
	// Text aliases the scanned buffer; copy it before the buffer is reused.
	Text []byte
	// Found reports whether the key was located.
	Found bool
}

// Scan extracts fields from buf in a single pass. Values of fields that are
// not found stay zero. Scan stops as soon as every field is found and
// returns the number of fields located.
//
// Scan resets every field before scanning, so repeated calls over the same
// buffer produce the same values.
func Scan(buf []byte, fields []Field) int {
	for i := range fields {
		fields[i].Num = 0
		fields[i].Text = nil
		fields[i].Found = false
	}

	found := 0
	pos := 0
	for pos < len(buf) && found < len(fields) {
		if pos == 0 || buf[pos-1] == '\n' {
			for i := range fields {
				f := &fields[i]
				if f.Found || !matchesAt(buf[pos:], f.Key) {
					continue
				}
				next, ok := f.parse(buf, pos+len(f.Key))
				if !ok {
					continue
				}
				f.Found = true
				found++
				pos = next
				break
			}
		}

		nl := bytes.IndexByte(buf[pos:], '\n')
		if nl < 0 {
			break
		}
		pos += nl + 1
	}
	return found
}

// parse reads the value that follows the key ending at pos and returns the
// position just past it.
func (f *Field) parse(buf []byte, pos int) (int, bool) {
	pos = skipBlanks(buf, pos)
	if pos >= len(buf) || (buf[pos] != ':' && buf[pos] != '=') {
		return 0, false
	}
	pos = skipBlanks(buf, pos+1)

	switch f.Kind {
	case Number:
		v, n, ok := ParseUint(buf[pos:])
		if !ok {
			return 0, false
		}
		f.Num = v
		return pos + n, true
	case Text:
		end := pos
		for end < len(buf) && buf[end] != '\n' {
			end++
		}
		text := bytes.TrimRight(buf[pos:end], " \t\r")
		if len(text) == 0 {
			return 0, false
		}
		f.Text = text
		return end, true
	}
	return 0, false
}

// ParseUint parses the leading decimal digits of b without allocating. It
// returns the value, the number of bytes consumed and false when b does not
// start with a digit or the value overflows.
func ParseUint(b []byte) (uint64, int, bool) {
	var v uint64
	n := 0
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		d := uint64(b[n] - '0')
		if v > (^uint64(0)-d)/10 {
			return 0, 0, false
		}
		v = v*10 + d
		n++
	}
	return v, n, n > 0
}

func matchesAt(data []byte, key string) bool {
	return len(data) >= len(key) && string(data[:len(key)]) == key
}

func skipBlanks(buf []byte, pos int) int {
	for pos < len(buf) && (buf[pos] == ' ' || buf[pos] == '\t') {
		pos++
	}
	return pos
}

// readFile fills buf with the head of the file at path and returns the
// number of bytes read. Files larger than buf are truncated.
func readFile(path string, buf []byte) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("read %s: %w", path, err)
	}
	return n, nil
}
