// Package export writes finalized chunks to .vcf files. It owns output
// naming (per-contact, sequence-suffixed, or single-file) and filename
// sanitization.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"csv2vcard/internal/chunk"
)

// Naming selects how output files are named.
type Naming int

const (
	// PerContact names each file after the contact it holds. Used when no
	// splitting limit is set and every chunk carries exactly one block.
	PerContact Naming = iota
	// Sequence appends a zero-padded chunk number to the base name.
	Sequence
	// Single writes exactly one file named after the base name.
	Single
)

// NamingFor derives the naming scheme from a chunk policy.
func NamingFor(p chunk.Policy) Naming {
	switch {
	case p.SingleFile:
		return Single
	case p.Limited():
		return Sequence
	default:
		return PerContact
	}
}

// FileSink writes chunks into a directory, creating it on first write.
type FileSink struct {
	dir    string
	base   string
	naming Naming
	made   bool
	files  []string
}

// NewFileSink creates a sink writing under dir. base names sequence and
// single-file outputs.
func NewFileSink(dir, base string, naming Naming) *FileSink {
	if base == "" {
		base = "contacts"
	}
	return &FileSink{dir: dir, base: base, naming: naming}
}

// WriteChunk implements chunk.Sink.
func (s *FileSink) WriteChunk(ch chunk.Chunk) error {
	if !s.made {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", s.dir, err)
		}
		s.made = true
	}

	name := s.fileName(ch)
	path := filepath.Join(s.dir, name)

	var data []byte
	for _, b := range ch.Blocks {
		data = append(data, b.Data...)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.files = append(s.files, path)
	return nil
}

// Files returns the paths written so far, in write order.
func (s *FileSink) Files() []string {
	return s.files
}

func (s *FileSink) fileName(ch chunk.Chunk) string {
	switch s.naming {
	case Single:
		return s.base + ".vcf"
	case Sequence:
		return fmt.Sprintf("%s_%03d.vcf", s.base, ch.Seq)
	}
	if len(ch.Blocks) == 1 && ch.Blocks[0].Name != "" {
		return ch.Blocks[0].Name + ".vcf"
	}
	return fmt.Sprintf("%s_%03d.vcf", s.base, ch.Seq)
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9_\-]`)

// SafeName sanitizes a string for filesystem use: lowercased, unsafe runes
// replaced, path traversal neutralized.
func SafeName(name string) string {
	safe := unsafeChars.ReplaceAllString(strings.ToLower(name), "_")
	safe = strings.ReplaceAll(safe, "..", "_")
	safe = strings.Trim(safe, "_.")
	if safe == "" {
		return "unknown"
	}
	return safe
}

// ContactFileStem builds the per-contact file stem, e.g. "gump_forrest".
func ContactFileStem(lastName, firstName string) string {
	last := SafeName(lastName)
	first := SafeName(firstName)
	if first == "unknown" {
		first = "contact"
	}
	return last + "_" + first
}
