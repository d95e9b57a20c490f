package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"loto/internal/draw"
	"loto/internal/formats"
	"loto/internal/logger"
	"loto/internal/metrics"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrNoFormat = errors.New("no format recognized")

// Loader reads draw history files. Each supported suffix has its own
// delimiter; files are always read one at a time.
type Loader struct {
	delimiters map[string]rune
	metrics    *metrics.Collector
	progress   bool
}

func NewLoader(m *metrics.Collector) *Loader {
	if m == nil {
		m = metrics.New()
	}
	l := &Loader{
		delimiters: make(map[string]rune),
		metrics:    m,
	}
	l.RegisterSuffix(".csv", ';')
	return l
}

func (l *Loader) RegisterSuffix(suffix string, delimiter rune) {
	l.delimiters[strings.ToLower(suffix)] = delimiter
}

// ShowProgress enables a progress bar on stderr for LoadAll.
func (l *Loader) ShowProgress(enabled bool) {
	l.progress = enabled
}

func (l *Loader) Metrics() *metrics.Collector {
	return l.metrics
}

func (l *Loader) Supported(path string) bool {
	_, ok := l.delimiters[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (l *Loader) Suffixes() []string {
	out := make([]string, 0, len(l.delimiters))
	for s := range l.delimiters {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Discover lists the supported files directly inside dir, sorted by name.
// Unsupported files and subdirectories are skipped.
func (l *Loader) Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if l.Supported(path) {
			files = append(files, path)
		}
	}
	return files, nil
}

// LoadAll loads every path in order and concatenates the draws.
// A failing file contributes nothing and does not stop the others.
func (l *Loader) LoadAll(paths []string) []draw.Result {
	var bar *progressbar.ProgressBar
	if l.progress && len(paths) > 1 {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan]Loading history...[reset]"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	var results []draw.Result
	for _, path := range paths {
		results = append(results, l.Load(path)...)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results
}

// Load returns the draws found in path. Any file-level problem is logged
// as a warning and yields no draws.
func (l *Loader) Load(path string) []draw.Result {
	results, err := l.load(path)
	if err != nil {
		logger.Log.Warnf("⚠️  Skipping %s: %v", path, err)
		l.metrics.RecordFileFailure(path, err)
		return nil
	}
	return results
}

func (l *Loader) load(path string) ([]draw.Result, error) {
	delimiter, ok := l.delimiters[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("unsupported file suffix %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return l.read(path, f, delimiter)
}

func (l *Loader) read(path string, src io.Reader, delimiter rune) ([]draw.Result, error) {
	// Strips a UTF-8 BOM if present so the first header is not mangled.
	decoded := transform.NewReader(src, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	format, ok := formats.Classify(header)
	if !ok {
		return nil, fmt.Errorf("%w (header=%v)", ErrNoFormat, header)
	}
	logger.Log.Debugf("📄 %s classified as %s", path, format.Name)

	var results []draw.Result
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rowResults, err := format.ExtractRow(toRow(header, record))
		if err != nil {
			logger.Log.Warnf("⚠️  %s:%d dropped: %v", path, line, err)
			l.metrics.RecordRowDrop(path, err)
			continue
		}
		results = append(results, rowResults...)
	}

	l.metrics.RecordFile(path, format, len(results))
	logger.Log.Debugf("✅ %s: %d draws", path, len(results))
	return results, nil
}

// toRow pairs header names with cells. Short records leave trailing
// columns absent.
func toRow(header, record []string) formats.Row {
	row := make(formats.Row, len(header))
	for i, key := range header {
		if i < len(record) {
			row[key] = record[i]
		}
	}
	return row
}
