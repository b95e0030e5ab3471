package report

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"renormising/internal/renormdb"
	"renormising/internal/spin"
)

var (
	once   sync.Once
	logger *zap.Logger
)

func getTestLogger() *zap.Logger {
	once.Do(func() {
		var err error
		logger, err = zap.NewProduction() // or NewProduction, or NewDevelopment,
		if err != nil {
			log.Fatal(err)
		}
	})

	return logger
}

func runSurvey(t *testing.T) *renormdb.Survey {
	t.Helper()
	s := renormdb.NewSurvey(getTestLogger())
	s.Run()
	return s
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, runSurvey(t).Records()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+spin.Masks)
	require.Equal(t, TableHeader, lines[0])

	// mask 0 and mask 63 pin the column layout
	require.Equal(t, " -1 -1 -1\t -1\t -1 -1 -1\t -1\t\t  6\t  2", lines[1])
	require.Equal(t, "  1  1  1\t  1\t  1  1  1\t  1\t\t  6\t  2", lines[1+spin.Masks-1])
}

func TestWriteSums_golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSums(&buf, runSurvey(t)))

	want := "Exp[A(k)+2k'] = 14 Exp[-2 k]+ 16 Exp[2 k]+ 2 Exp[6 k]\n" +
		"Exp[A(k)-2k'] = 2 Exp[-6 k]+ 16 Exp[-2 k]+ 14 Exp[2 k]\n"
	require.Equal(t, want, buf.String())
}

func TestParseTable_roundTrip(t *testing.T) {
	records := runSurvey(t).Records()

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, records))

	parsed, err := ParseTable(&buf)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(records, parsed))
}

func TestParseTable_errors(t *testing.T) {
	_, err := ParseTable(strings.NewReader(""))
	require.ErrorIs(t, err, ErrBadHeader)

	_, err = ParseTable(strings.NewReader("wrong header\n"))
	require.ErrorIs(t, err, ErrBadHeader)

	_, err = ParseTable(strings.NewReader(TableHeader + "\n 1 2 3\n"))
	require.ErrorIs(t, err, ErrBadRow)

	// a spin column other than ±1
	_, err = ParseTable(strings.NewReader(TableHeader + "\n -1 -1  0\t -1\t -1 -1 -1\t -1\t\t  6\t  2\n"))
	require.ErrorIs(t, err, ErrBadRow)
}

func TestParseSums_roundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSums(&buf, runSurvey(t)))

	equal, unequal, err := ParseSums(&buf)
	require.NoError(t, err)
	require.Equal(t, []Term{{14, -2}, {16, 2}, {2, 6}}, equal)
	require.Equal(t, []Term{{2, -6}, {16, -2}, {14, 2}}, unequal)
}

func TestParseSums_errors(t *testing.T) {
	_, _, err := ParseSums(strings.NewReader(""))
	require.ErrorIs(t, err, ErrBadSumLine)

	_, _, err = ParseSums(strings.NewReader("Exp[A(k)+2k'] = 64 Exp[6 k]\n"))
	require.ErrorIs(t, err, ErrBadSumLine, "missing unequal line")

	_, _, err = ParseSums(strings.NewReader("Exp[A(k)+2k'] = what\nExp[A(k)-2k'] = 2 Exp[-6 k]\n"))
	require.ErrorIs(t, err, ErrBadSumLine)
}

func TestSaveArtifacts(t *testing.T) {
	s := runSurvey(t)
	dir := t.TempDir()
	tableFile := filepath.Join(dir, "cfg_out.txt")
	renormFile := filepath.Join(dir, "renorm_out.txt")

	require.NoError(t, SaveTable(tableFile, s))
	require.NoError(t, SaveSums(renormFile, s))

	table, err := os.Open(tableFile)
	require.NoError(t, err)
	defer table.Close()
	records, err := ParseTable(table)
	require.NoError(t, err)
	require.Len(t, records, spin.Masks)

	sums, err := os.Open(renormFile)
	require.NoError(t, err)
	defer sums.Close()
	equal, unequal, err := ParseSums(sums)
	require.NoError(t, err)
	require.Len(t, equal, 3)
	require.Len(t, unequal, 3)
}
