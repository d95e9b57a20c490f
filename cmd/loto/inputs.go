package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"loto/internal/draw"
	"loto/internal/formats"
	"loto/internal/history"
	"loto/internal/logger"
)

type inputOptions struct {
	repository string
	files      []string
	format     string
	delimiters map[string]string
	progress   bool
	report     bool
}

// usageError reports bad command line input; it aborts before any file is read.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func newLoader(opts inputOptions) *history.Loader {
	loader := history.NewLoader(nil)
	for suffix, delim := range opts.delimiters {
		if r := []rune(delim); len(r) == 1 {
			loader.RegisterSuffix(suffix, r[0])
		}
	}
	loader.ShowProgress(opts.progress)
	return loader
}

// resolveInputs validates the repository/file choice and returns the
// history files to read.
func resolveInputs(loader *history.Loader, opts inputOptions) ([]string, error) {
	switch {
	case opts.repository != "" && len(opts.files) > 0:
		return nil, usagef("--repository and --file can't be set simultaneously")
	case opts.repository == "" && len(opts.files) == 0:
		return nil, usagef("one of --repository or --file should be set")
	}

	if opts.repository != "" {
		info, err := os.Stat(opts.repository)
		if err != nil {
			return nil, usagef("--repository: %v", err)
		}
		if !info.IsDir() {
			return nil, usagef("--repository: %s is not a directory", opts.repository)
		}
		paths, err := loader.Discover(opts.repository)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			logger.Log.Warnf("⚠️  No file found for accepted formats: %s", strings.Join(loader.Suffixes(), ", "))
		}
		return paths, nil
	}

	for _, path := range opts.files {
		info, err := os.Stat(path)
		if err != nil {
			return nil, usagef("--file: %v", err)
		}
		if info.IsDir() {
			return nil, usagef("--file: %s is a directory", path)
		}
		if !loader.Supported(path) {
			return nil, usagef("--file must be one of %s: %s", strings.Join(loader.Suffixes(), ", "), path)
		}
	}
	return opts.files, nil
}

// prepare does all argument validation, then loads the history.
func prepare(stderr io.Writer, opts inputOptions) (*formats.Format, []draw.Result, error) {
	format, err := formats.ByName(opts.format)
	if err != nil {
		return nil, nil, usagef("--loto-format: %v", err)
	}

	loader := newLoader(opts)
	paths, err := resolveInputs(loader, opts)
	if err != nil {
		return nil, nil, err
	}

	results := loader.LoadAll(paths)
	logger.Log.Infof("📚 Loaded %d draws from %d file(s)", len(results), len(paths))

	if opts.report {
		loader.Metrics().PrintReport(stderr)
	}
	return format, results, nil
}
