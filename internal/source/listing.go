package source

import (
	"bufio"
	"bytes"
	"os"
	"strings"
)

// ListingFlags records normalisations applied while loading a listing.
type ListingFlags uint8

const (
	// ListingVirtual indicates the listing was added from memory (test, stdin, etc.).
	ListingVirtual ListingFlags = 1 << iota
	ListingHadBOM
	ListingNormalizedCRLF
)

// Line is one declarator taken from a listing.
type Line struct {
	Number uint32 // 1-based
	Text   string
}

// Listing is a text file holding one declarator per line.
// Blank lines and lines starting with '#' are skipped.
type Listing struct {
	Path  string
	Lines []Line
	Flags ListingFlags
}

// LoadListing reads a listing from disk, normalising BOM and CRLF.
func LoadListing(path string) (*Listing, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := ListingFlags(0)
	if hadBOM {
		flags |= ListingHadBOM
	}
	if hadCRLF {
		flags |= ListingNormalizedCRLF
	}
	l := NewListing(path, content)
	l.Flags |= flags
	return l, nil
}

// NewListing splits content into declarator lines.
func NewListing(path string, content []byte) *Listing {
	l := &Listing{Path: normalizePath(path)}
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var n int
	for sc.Scan() {
		n++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		l.Lines = append(l.Lines, Line{Number: Offset(n), Text: trimmed})
	}
	return l
}

// VirtualListing builds a listing from in-memory declarators, one per line.
func VirtualListing(name string, decls ...string) *Listing {
	l := &Listing{Path: name, Flags: ListingVirtual}
	for i, d := range decls {
		l.Lines = append(l.Lines, Line{Number: Offset(i + 1), Text: d})
	}
	return l
}
