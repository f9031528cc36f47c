// Package ascii provides the table of distribution logos and the lookup
// that maps an OS identifier to one of them. Logos are written with
// "${cN}" color placeholders which are resolved to ANSI escape sequences
// when the table is built.
package ascii

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const colorReset = "\033[0m"

// placeholderRegex matches the "${c1}".."${c9}" color placeholders.
var placeholderRegex = regexp.MustCompile(`\$\{c(\d+)\}`)

// Entry is one display-ready logo.
type Entry struct {
	// Name is matched exactly, or as a prefix when Wildcard is set
	Name     string
	Wildcard bool

	// Art is the colorized logo, lines separated by "\n"
	Art string

	// MaxWidth is the widest line in characters, escape sequences excluded
	MaxWidth int

	// Accent is the escape sequence of the logo's first color, used for
	// the info column labels
	Accent string
}

// Lines splits the art into rows.
func (e Entry) Lines() []string {
	return strings.Split(e.Art, "\n")
}

// NewEntry resolves the placeholders in src using colors, where colors[i]
// is the palette index for "${c<i+1>}". Index 0 through 7 select the basic
// foreground colors, higher values the 256-color palette.
func NewEntry(name string, wildcard bool, colors []int, src string) Entry {
	e := Entry{
		Name:     name,
		Wildcard: wildcard,
		MaxWidth: maxVisibleWidth(src),
	}
	if len(colors) > 0 {
		e.Accent = ansiColor(colors[0])
	}

	formatted := placeholderRegex.ReplaceAllStringFunc(src, func(m string) string {
		i, err := strconv.Atoi(m[len("${c") : len(m)-1])
		if err != nil || i < 1 || i > len(colors) {
			return ""
		}
		return ansiColor(colors[i-1])
	})
	if !strings.HasSuffix(formatted, colorReset) {
		formatted += colorReset
	}
	e.Art = formatted
	return e
}

func ansiColor(c int) string {
	if c <= 7 {
		return fmt.Sprintf("\033[%dm", 30+c)
	}
	return fmt.Sprintf("\033[38;5;%dm", c)
}

// maxVisibleWidth measures the widest line of the placeholder source with
// the placeholders removed.
func maxVisibleWidth(src string) int {
	widest := 0
	for _, line := range strings.Split(src, "\n") {
		w := utf8.RuneCountInString(placeholderRegex.ReplaceAllString(line, ""))
		if w > widest {
			widest = w
		}
	}
	return widest
}

// Table is an immutable, name-sorted set of entries.
type Table struct {
	entries []Entry
	// exact indexes the non-wildcard entries, in name order
	exact []int
}

// NewTable sorts entries by name (case-sensitive, stable) and indexes the
// exact-match entries for binary search.
func NewTable(entries []Entry) *Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	t := &Table{entries: sorted}
	for i, e := range sorted {
		if !e.Wildcard {
			t.exact = append(t.exact, i)
		}
	}
	return t
}

// Lookup returns the entry named id. An exact, non-wildcard match always
// wins; otherwise the first wildcard entry whose name is a prefix of id is
// returned.
func (t *Table) Lookup(id string) (Entry, bool) {
	i := sort.Search(len(t.exact), func(k int) bool {
		return t.entries[t.exact[k]].Name >= id
	})
	if i < len(t.exact) && t.entries[t.exact[i]].Name == id {
		return t.entries[t.exact[i]], true
	}

	for _, e := range t.entries {
		if e.Wildcard && strings.HasPrefix(id, e.Name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Names lists every entry name in table order. Wildcard names carry a
// trailing "*".
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
		if e.Wildcard {
			names[i] += "*"
		}
	}
	return names
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Select looks up id and falls back to the default entry on a miss.
func (t *Table) Select(id string) Entry {
	if e, ok := t.Lookup(id); ok {
		return e
	}
	return t.Default()
}

// Default returns the generic Linux entry, or the first entry when the
// table has none.
func (t *Table) Default() Entry {
	if e, ok := t.Lookup(DefaultName); ok {
		return e
	}
	if len(t.entries) > 0 {
		return t.entries[0]
	}
	return Entry{}
}

// IdentifierFor derives the lookup key from an OS label: its first
// whitespace-delimited token.
//
// Example: IdentifierFor("Arch Linux x86_64") returns "Arch"
func IdentifierFor(osName string) string {
	if f := strings.Fields(osName); len(f) > 0 {
		return f[0]
	}
	return ""
}
