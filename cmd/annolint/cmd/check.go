package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abramin/annolint/internal/cache"
	"github.com/abramin/annolint/internal/checker"
	"github.com/abramin/annolint/internal/checks"
)

// dumpSuffix is the extension the exporter gives AST dump files.
const dumpSuffix = ".ast.json"

var (
	flagSelect       []string
	flagExtendSelect []string
	flagIgnore       []string
	flagExtendIgnore []string
	flagFix          bool
	flagNoCache      bool
	flagWorkers      int
)

var checkCmd = &cobra.Command{
	Use:   "check [paths]",
	Short: "Check AST dumps and report annotation problems",
	Long: `Check runs every enabled rule over the given AST dump files.
Directories are searched recursively for *.ast.json files.

Results are cached per file in .annolint/cache.db; a file is re-checked
only when its dump or the effective settings change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cmd.Flags().Changed("select") {
			cfg.Select = flagSelect
		}
		if cmd.Flags().Changed("extend-select") {
			cfg.ExtendSelect = flagExtendSelect
		}
		if cmd.Flags().Changed("ignore") {
			cfg.Ignore = flagIgnore
		}
		if cmd.Flags().Changed("extend-ignore") {
			cfg.ExtendIgnore = flagExtendIgnore
		}
		if flagFix {
			cfg.Fix = true
		}

		resolved, err := cfg.Settings()
		if err != nil {
			return err
		}

		paths := args
		if len(paths) == 0 {
			paths = []string{"."}
		}
		files, err := collectDumpFiles(paths)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No AST dumps found.")
			return nil
		}

		runner := &checker.Runner{
			Settings: resolved,
			Patch:    cfg.Fix,
			Workers:  flagWorkers,
		}
		if !flagNoCache {
			c, err := cache.Open(".")
			if err != nil {
				return fmt.Errorf("opening cache: %w", err)
			}
			defer c.Close()
			runner.Cache = c
		}

		start := time.Now()
		results := runner.Run(files)

		problems := 0
		fixable := 0
		cached := 0
		var failures []error
		for _, result := range results {
			if result.Err != nil {
				failures = append(failures, result.Err)
				continue
			}
			if result.Cached {
				cached++
			}
			for _, msg := range result.Messages {
				problems++
				if msg.Fix != nil {
					fixable++
				}
				fmt.Println(formatDiagnostic(result.Path, msg))
			}
		}

		if runner.Cache != nil {
			// Run bookkeeping is best effort.
			_, _ = runner.Cache.RecordRun(len(files)-cached, cached)
		}

		fmt.Println()
		fmt.Printf("Checked %s files in %s (%s from cache)\n",
			humanize.Comma(int64(len(files))),
			time.Since(start).Round(time.Millisecond),
			humanize.Comma(int64(cached)))
		for _, failure := range failures {
			fmt.Fprintf(os.Stderr, "error: %v\n", failure)
		}
		if len(failures) > 0 {
			return fmt.Errorf("failed to check %d files", len(failures))
		}
		if problems > 0 {
			if fixable > 0 {
				return fmt.Errorf("found %s problems (%s fixable)",
					humanize.Comma(int64(problems)), humanize.Comma(int64(fixable)))
			}
			return fmt.Errorf("found %s problems", humanize.Comma(int64(problems)))
		}
		fmt.Println("All checks passed!")
		return nil
	},
}

// formatDiagnostic renders one report line. Columns are stored 0-based but
// printed 1-based, matching what editors expect.
func formatDiagnostic(path string, msg checks.Message) string {
	line := fmt.Sprintf("%s:%d:%d: %s %s",
		strings.TrimSuffix(path, dumpSuffix),
		msg.Range.Start.Row, msg.Range.Start.Col+1, msg.Code, msg.Body)
	if msg.Fix != nil {
		line += " [*]"
	}
	return line
}

// collectDumpFiles expands the argument list into dump files: files are
// taken as-is, directories are walked recursively.
func collectDumpFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// The cache directory never holds dumps.
				if d.Name() == ".annolint" {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(p, dumpSuffix) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func init() {
	checkCmd.Flags().StringSliceVar(&flagSelect, "select", nil, "comma-separated code prefixes to enable")
	checkCmd.Flags().StringSliceVar(&flagExtendSelect, "extend-select", nil, "code prefixes to enable on top of the config")
	checkCmd.Flags().StringSliceVar(&flagIgnore, "ignore", nil, "comma-separated code prefixes to disable")
	checkCmd.Flags().StringSliceVar(&flagExtendIgnore, "extend-ignore", nil, "code prefixes to disable on top of the config")
	checkCmd.Flags().BoolVar(&flagFix, "fix", false, "attach replacement fixes to diagnostics")
	checkCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable the result cache")
	checkCmd.Flags().IntVar(&flagWorkers, "workers", 0, "number of parallel workers (default: number of CPUs)")
	rootCmd.AddCommand(checkCmd)
}
