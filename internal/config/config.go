// Package config holds the conversion options as one explicit value with
// named, defaulted fields. Defaults come from CSV2VCARD_* environment
// variables; command-line flags override them.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"

	"csv2vcard/internal/chunk"
)

// Options configures one conversion run.
type Options struct {
	// Delimiter is the CSV field separator, one character.
	Delimiter string `env:"CSV2VCARD_DELIMITER" envDefault:","`
	// Version is the target vCard version, "3.0" or "4.0".
	Version string `env:"CSV2VCARD_VERSION" envDefault:"3.0"`
	// OutputDir receives the generated .vcf files.
	OutputDir string `env:"CSV2VCARD_OUTPUT_DIR" envDefault:"export"`
	// BaseName names sequence and single-file outputs.
	BaseName string `env:"CSV2VCARD_BASE_NAME" envDefault:"contacts"`
	// Encoding forces the input encoding; empty means BOM-based detection.
	Encoding string `env:"CSV2VCARD_ENCODING"`
	// MappingFile points to a YAML/JSON alias override document.
	MappingFile string `env:"CSV2VCARD_MAPPING"`
	// Filter is an optional row predicate expression.
	Filter string
	// Strict aborts the run on the first invalid contact instead of
	// counting and skipping it.
	Strict bool `env:"CSV2VCARD_STRICT"`
	// SingleFile writes every contact into one .vcf file.
	SingleFile bool
	// StripAccents folds accented values to ASCII before encoding.
	StripAccents bool
	// MaxRecordsPerFile completes an output file after this many vCards.
	MaxRecordsPerFile int `env:"CSV2VCARD_MAX_VCARDS_PER_FILE"`
	// MaxFileSize completes an output file before it would exceed this
	// many bytes.
	MaxFileSize int64 `env:"CSV2VCARD_MAX_VCARD_FILE_SIZE"`
	// Verbose enables debug logging.
	Verbose bool
}

// Default returns Options seeded from the environment.
func Default() (Options, error) {
	var o Options
	if err := env.Parse(&o); err != nil {
		return Options{}, fmt.Errorf("parse environment: %w", err)
	}
	return o, nil
}

// DelimiterRune validates and returns the delimiter as a rune.
func (o Options) DelimiterRune() (rune, error) {
	if utf8.RuneCountInString(o.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be one character, got %q", o.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(o.Delimiter)
	return r, nil
}

// ChunkPolicy derives the output splitting policy.
func (o Options) ChunkPolicy() chunk.Policy {
	return chunk.Policy{
		MaxRecords: o.MaxRecordsPerFile,
		MaxBytes:   o.MaxFileSize,
		SingleFile: o.SingleFile,
	}
}
