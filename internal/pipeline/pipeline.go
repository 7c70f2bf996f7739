// Package pipeline runs one conversion: CSV tables through the row mapper,
// contact validation and the vCard encoder into the output chunker. The
// run is single-threaded and synchronous; writing is the sink's job.
package pipeline

import (
	"fmt"
	"log/slog"

	"csv2vcard/internal/chunk"
	"csv2vcard/internal/config"
	"csv2vcard/internal/contact"
	"csv2vcard/internal/csvio"
	"csv2vcard/internal/export"
	"csv2vcard/internal/fieldmap"
	"csv2vcard/internal/filter"
	"csv2vcard/internal/textnorm"
	"csv2vcard/internal/vcard"
)

// RowProblem records one skipped row in a lenient run.
type RowProblem struct {
	Source string
	Row    int // 1-based; the header is row 1
	Err    error
}

// Summary reports what a run did. In lenient mode every skipped record is
// counted here; nothing is silently dropped.
type Summary struct {
	Rows      int
	Converted int
	Invalid   int
	Filtered  int
	Chunks    int
	Problems  []RowProblem
}

// Run converts the given tables and hands finalized chunks to sink.
// Configuration problems (bad version, malformed mapping document, bad
// filter expression) surface before any row is processed. In strict mode
// the first invalid contact aborts the run.
func Run(opts config.Options, tables []*csvio.Table, sink chunk.Sink, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	version, err := vcard.ParseVersion(opts.Version)
	if err != nil {
		return nil, err
	}

	registry := fieldmap.Default()
	if opts.MappingFile != "" {
		registry, err = fieldmap.Load(opts.MappingFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded mapping overrides", "path", opts.MappingFile)
	}

	var pred *filter.Filter
	if opts.Filter != "" {
		pred, err = filter.Compile(opts.Filter)
		if err != nil {
			return nil, err
		}
	}

	mode := contact.Lenient
	if opts.Strict {
		mode = contact.Strict
	}

	policy := opts.ChunkPolicy()
	if !policy.SingleFile && !policy.Limited() {
		// Default output mode: one vCard per file, named per contact.
		policy.MaxRecords = 1
	}
	chunker := chunk.New(policy, sink)
	summary := &Summary{}

	for _, t := range tables {
		mapper := registry.Resolve(t.Header)
		logger.Debug("resolved header", "columns", len(t.Header), "matched", mapper.Matched())

		for i, row := range t.Rows {
			rowNum := i + 2
			summary.Rows++

			fields := mapper.Map(row)
			if opts.StripAccents {
				fields = textnorm.StripAccentsMap(fields)
			}

			if pred != nil {
				keep, err := pred.Match(fields)
				if err != nil {
					if opts.Strict {
						return nil, fmt.Errorf("row %d: %w", rowNum, err)
					}
					summary.Invalid++
					summary.Problems = append(summary.Problems, RowProblem{Row: rowNum, Err: err})
					logger.Warn("skipping row", "row", rowNum, "error", err)
					continue
				}
				if !keep {
					summary.Filtered++
					continue
				}
			}

			c, err := contact.New(fields, mode)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}
			if !c.Valid() {
				summary.Invalid++
				summary.Problems = append(summary.Problems, RowProblem{Row: rowNum, Err: c.Err()})
				logger.Warn("skipping invalid contact", "row", rowNum, "error", c.Err())
				continue
			}

			block, err := vcard.Encode(c, version)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}

			b := chunk.Block{
				Name: export.ContactFileStem(c.LastName, c.FirstName),
				Data: []byte(block),
			}
			if err := chunker.Add(b); err != nil {
				return nil, err
			}
			summary.Converted++
		}
	}

	if err := chunker.Flush(); err != nil {
		return nil, err
	}
	summary.Chunks = chunker.Chunks()

	logger.Info("conversion finished",
		"rows", summary.Rows,
		"converted", summary.Converted,
		"invalid", summary.Invalid,
		"filtered", summary.Filtered,
		"files", summary.Chunks)
	return summary, nil
}
