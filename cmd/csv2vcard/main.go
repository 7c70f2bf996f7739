// csv2vcard converts CSV contact exports into vCard 3.0 / 4.0 files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"csv2vcard/internal/config"
	"csv2vcard/internal/contact"
	"csv2vcard/internal/csvio"
	"csv2vcard/internal/export"
	"csv2vcard/internal/fieldmap"
	"csv2vcard/internal/pipeline"
)

// Version information injected at build time.
var (
	version = "dev"
	commit  = "unknown"
)

var opts config.Options

var rootCmd = &cobra.Command{
	Use:           "csv2vcard",
	Short:         "Convert CSV contact files to vCard 3.0 / 4.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert <csv-file-or-directory>",
	Short: "Convert one CSV file or every CSV file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the canonical contact fields and their vCard properties",
	RunE:  runFields,
}

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Print the default header mapping as a starting point for overrides",
	RunE:  runMapping,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("csv2vcard %s (%s)\n", version, commit)
	},
}

func init() {
	var err error
	opts, err = config.Default()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fl := convertCmd.Flags()
	fl.StringVarP(&opts.Delimiter, "delimiter", "d", opts.Delimiter, "CSV field delimiter character")
	fl.StringVarP(&opts.OutputDir, "output", "o", opts.OutputDir, "output directory for vCard files")
	fl.StringVarP(&opts.Version, "vcard-version", "V", opts.Version, "vCard version to generate: 3.0 or 4.0")
	fl.StringVarP(&opts.MappingFile, "mapping", "m", opts.MappingFile, "YAML/JSON mapping document for custom CSV column names")
	fl.StringVarP(&opts.Encoding, "encoding", "e", opts.Encoding, "input encoding (detected from BOM if not set)")
	fl.StringVar(&opts.BaseName, "base-name", opts.BaseName, "base name for combined output files")
	fl.StringVar(&opts.Filter, "filter", "", `row filter expression, e.g. 'fields["org"] == "ACME"'`)
	fl.BoolVarP(&opts.SingleFile, "single-vcard", "1", opts.SingleFile, "export all contacts into a single .vcf file")
	fl.BoolVar(&opts.Strict, "strict", opts.Strict, "abort on the first invalid contact")
	fl.BoolVar(&opts.StripAccents, "strip-accents", opts.StripAccents, "fold accented characters to ASCII")
	fl.IntVar(&opts.MaxRecordsPerFile, "max-vcards-per-file", opts.MaxRecordsPerFile, "split output after this many vCards per file")
	fl.Int64Var(&opts.MaxFileSize, "max-vcard-file-size", opts.MaxFileSize, "split output before a file would exceed this many bytes")
	fl.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "enable debug logging")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(mappingCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	delimiter, err := opts.DelimiterRune()
	if err != nil {
		return err
	}

	paths, err := csvio.FindFiles(args[0])
	if err != nil {
		return err
	}

	tables := make([]*csvio.Table, 0, len(paths))
	for _, path := range paths {
		t, err := csvio.ReadFile(path, delimiter, opts.Encoding)
		if err != nil {
			return err
		}
		logger.Debug("parsed source", "path", path, "rows", len(t.Rows))
		tables = append(tables, t)
	}

	sink := export.NewFileSink(opts.OutputDir, opts.BaseName, export.NamingFor(opts.ChunkPolicy()))
	summary, err := pipeline.Run(opts, tables, sink, logger)
	if err != nil {
		return err
	}

	for _, p := range summary.Problems {
		logger.Warn("skipped record", "row", p.Row, "reason", p.Err)
	}
	fmt.Printf("Converted %d of %d contacts into %d file(s) under %s\n",
		summary.Converted, summary.Rows, summary.Chunks, opts.OutputDir)
	if summary.Invalid > 0 {
		fmt.Printf("Skipped %d invalid record(s); rerun with --strict to fail on them\n", summary.Invalid)
	}
	return nil
}

func runFields(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tPROPERTY\tTYPE\tDESCRIPTION")
	for _, e := range contact.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Field, e.Property, e.Type, e.Doc)
	}
	return w.Flush()
}

func runMapping(cmd *cobra.Command, args []string) error {
	reg := fieldmap.Default()
	fmt.Println("# csv2vcard mapping document.")
	fmt.Println("# Keys are canonical fields; values list accepted CSV header spellings.")
	fmt.Println("# A field listed here replaces its default spellings entirely.")
	for _, field := range contact.Fields() {
		spellings := reg.Spellings(field)
		quoted := make([]string, len(spellings))
		for i, s := range spellings {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		fmt.Printf("%s: [%s]\n", field, strings.Join(quoted, ", "))
	}
	return nil
}
