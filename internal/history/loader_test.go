package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loto/internal/draw"
	"loto/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveBallHeader = "annee_numero_de_tirage;date_de_tirage;boule_1;boule_2;boule_3;boule_4;boule_5;numero_chance;"

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "loto_201911.csv",
		fiveBallHeader,
		"2020001;20200101;1;2;3;4;5;6;",
		"2019150;04/11/2019;49;12;8;30;21;3;",
	)

	l := NewLoader(nil)
	results := l.Load(path)
	require.Len(t, results, 2)
	assert.Equal(t, "1-2-3-4-5+6 on 01-01-2020", results[0].String())
	assert.Equal(t, "8-12-21-30-49+3 on 04-11-2019", results[1].String())
	assert.Equal(t, 2, l.Metrics().Draws())
}

func TestLoader_DropsBadRows(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv",
		fiveBallHeader,
		"1;20200101;1;2;3;4;5;6;",
		"2;20200104;7;8;9;10;11;2;",
	)
	bad := writeFile(t, dir, "bad.csv",
		fiveBallHeader,
		"1;20200101;1;2;3;4;5;6;",
		"2;not-a-date;7;8;9;10;11;2;",
	)

	l := NewLoader(nil)
	assert.Len(t, l.Load(good), 2)
	assert.Len(t, l.Load(bad), 1)

	nonNumeric := writeFile(t, dir, "letters.csv",
		fiveBallHeader,
		"1;20200101;1;two;3;4;5;6;",
		"2;20200104;7;8;9;10;11;2;",
	)
	assert.Len(t, l.Load(nonNumeric), 1)
	assert.Equal(t, 2, l.Metrics().Drops())
}

func TestLoader_SecondDraw(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "loto2017.csv",
		"date_de_tirage;boule_1;boule_2;boule_3;boule_4;boule_5;numero_chance;boule_1_second_tirage;boule_2_second_tirage;boule_3_second_tirage;boule_4_second_tirage;boule_5_second_tirage",
		"06/11/2017;1;2;3;4;5;6;10;11;12;13;14",
		"08/11/2017;21;22;23;24;25;7;;;;;",
	)

	results := NewLoader(nil).Load(path)
	require.Len(t, results, 3)
	assert.Equal(t, "10-11-12-13-14+6", results[1].String())
	assert.Equal(t, "21-22-23-24-25+7 on 08-11-2017", results[2].String())
}

func TestLoader_FileErrors(t *testing.T) {
	dir := t.TempDir()
	m := metrics.New()
	l := NewLoader(m)

	t.Run("missing file", func(t *testing.T) {
		assert.Empty(t, l.Load(filepath.Join(dir, "missing.csv")))
	})

	t.Run("unknown header", func(t *testing.T) {
		path := writeFile(t, dir, "other.csv", "a;b;c", "1;2;3")
		assert.Empty(t, l.Load(path))
	})

	t.Run("wrong delimiter", func(t *testing.T) {
		path := writeFile(t, dir, "commas.csv",
			"date_de_tirage,boule_1,boule_2,boule_3,boule_4,boule_5,numero_chance",
			"20200101,1,2,3,4,5,6",
		)
		assert.Empty(t, l.Load(path))
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "empty.csv")
		assert.Empty(t, l.Load(path))
	})

	t.Run("unsupported suffix", func(t *testing.T) {
		path := writeFile(t, dir, "draws.txt", fiveBallHeader, "1;20200101;1;2;3;4;5;6;")
		assert.Empty(t, l.Load(path))
	})

	assert.Equal(t, 5, m.Failures())
}

func TestLoader_BOM(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bom.csv",
		"\ufeffdate_de_tirage;boule_1;boule_2;boule_3;boule_4;boule_5;numero_chance",
		"20200101;1;2;3;4;5;6",
	)
	assert.Len(t, NewLoader(nil).Load(path), 1)
}

func TestLoader_LoadAll(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", fiveBallHeader, "1;20200101;1;2;3;4;5;6;")
	b := writeFile(t, dir, "b.csv", "x;y", "1;2")
	c := writeFile(t, dir, "c.csv",
		"date_de_tirage;boule_1;boule_2;boule_3;boule_4;boule_5;etoile_1;etoile_2",
		"05/02/2019;10;20;30;40;50;1;12",
	)

	l := NewLoader(nil)
	l.ShowProgress(true)
	results := l.LoadAll([]string{a, b, c})
	require.Len(t, results, 2)
	assert.True(t, draw.Result{Main: []int{50, 40, 30, 20, 10}}.In(results))
}

func TestLoader_Discover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", fiveBallHeader)
	writeFile(t, dir, "a.CSV", fiveBallHeader)
	writeFile(t, dir, "notes.txt", "hello")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))

	l := NewLoader(nil)
	files, err := l.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.CSV"), filepath.Join(dir, "b.csv")}, files)

	l.RegisterSuffix(".txt", ',')
	files, err = l.Discover(dir)
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Equal(t, []string{".csv", ".txt"}, l.Suffixes())

	_, err = l.Discover(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestLoader_SuffixCase(t *testing.T) {
	dir := t.TempDir()
	upper := writeFile(t, dir, "LOTO.CSV", fiveBallHeader, "1;20200101;1;2;3;4;5;6;")
	tsv := writeFile(t, dir, "euro.tsv",
		"date_de_tirage\tboule_1\tboule_2\tboule_3\tboule_4\tboule_5\tetoile_1\tetoile_2",
		"05/02/2019\t1\t2\t3\t4\t5\t1\t12")

	l := NewLoader(nil)
	assert.True(t, l.Supported(upper))
	require.Len(t, l.Load(upper), 1)

	l.RegisterSuffix(".TSV", '\t')
	assert.Equal(t, []string{".csv", ".tsv"}, l.Suffixes())
	assert.True(t, l.Supported(tsv))
	require.Len(t, l.Load(tsv), 1)
}
