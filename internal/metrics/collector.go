package metrics

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"loto/internal/draw"
	"loto/internal/formats"
)

type fileStat struct {
	Path    string
	Format  string
	Draws   int
	Dropped int
	Err     error
}

// Collector tallies what happened while loading history files.
type Collector struct {
	files  []*fileStat
	byPath map[string]*fileStat

	dropReasons map[string]int
	totalDrops  int
}

func New() *Collector {
	return &Collector{
		byPath:      make(map[string]*fileStat),
		dropReasons: make(map[string]int),
	}
}

func (c *Collector) file(path string) *fileStat {
	if s, ok := c.byPath[path]; ok {
		return s
	}
	s := &fileStat{Path: path}
	c.byPath[path] = s
	c.files = append(c.files, s)
	return s
}

func (c *Collector) RecordFile(path string, format *formats.Format, draws int) {
	s := c.file(path)
	s.Format = format.Name
	s.Draws += draws
}

func (c *Collector) RecordFileFailure(path string, err error) {
	c.file(path).Err = err
}

func (c *Collector) RecordRowDrop(path string, err error) {
	c.file(path).Dropped++
	c.totalDrops++

	reason := "Other"
	switch {
	case errors.Is(err, draw.ErrDate):
		reason = "Bad Date"
	case errors.Is(err, formats.ErrRow):
		reason = "Bad Numbers"
	}
	c.dropReasons[reason]++
}

// Draws returns the number of draws loaded across all files.
func (c *Collector) Draws() int {
	total := 0
	for _, s := range c.files {
		total += s.Draws
	}
	return total
}

func (c *Collector) Failures() int {
	n := 0
	for _, s := range c.files {
		if s.Err != nil {
			n++
		}
	}
	return n
}

func (c *Collector) Drops() int {
	return c.totalDrops
}

func (c *Collector) PrintReport(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(out, "\n📊 \033[1mHISTORY LOAD REPORT\033[0m")
	fmt.Fprintln(out, "────────────────────────────────────────")

	fmt.Fprintln(w, "\033[1;36m[ FILES ]\033[0m\t")
	if len(c.files) == 0 {
		fmt.Fprintln(w, "  (No files loaded)")
	}
	for _, s := range c.files {
		if s.Err != nil {
			fmt.Fprintf(w, "  %s:\t❌ %v\n", s.Path, s.Err)
			continue
		}
		fmt.Fprintf(w, "  %s:\t%s, %d draws, %d rows dropped\n", s.Path, s.Format, s.Draws, s.Dropped)
	}
	fmt.Fprintln(w, "\t")

	fmt.Fprintln(w, "\033[1;36m[ TOTALS ]\033[0m\t")
	fmt.Fprintf(w, "  Draws:\t%d\n", c.Draws())
	fmt.Fprintf(w, "  Failed Files:\t%d\n", c.Failures())
	fmt.Fprintf(w, "  Dropped Rows:\t%d\n", c.totalDrops)

	reasons := make([]string, 0, len(c.dropReasons))
	for k := range c.dropReasons {
		reasons = append(reasons, k)
	}
	sort.Strings(reasons)
	for _, k := range reasons {
		fmt.Fprintf(w, "    %s:\t%d\n", k, c.dropReasons[k])
	}

	w.Flush()
	fmt.Fprintln(out, "")
}
