package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"renormising/internal/renormdb"
	"renormising/internal/spin"
)

var (
	ErrBadHeader  = errors.New("unexpected table header")
	ErrBadRow     = errors.New("malformed table row")
	ErrBadSumLine = errors.New("malformed sum line")
)

// Term one "<count> Exp[<energy> k]" term of a sum line
type Term struct {
	Count  int
	Energy int
}

// ParseTable reads the raw table artifact back into records. Spin
// columns must hold exactly +1 or -1; energies are taken as written,
// the caller recomputes them if it wants to verify.
func ParseTable(r io.Reader) ([]renormdb.Record, error) {
	const msg = "ParseTable:"

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%s empty input: %w", msg, ErrBadHeader)
	}
	if scanner.Text() != TableHeader {
		return nil, fmt.Errorf("%s %q: %w", msg, scanner.Text(), ErrBadHeader)
	}

	var records []renormdb.Record
	for line := 2; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 10 {
			return nil, fmt.Errorf("%s line %d has %d columns: %w", msg, line, len(fields), ErrBadRow)
		}

		cols := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%s line %d column %d: %w", msg, line, i+1, ErrBadRow)
			}
			cols[i] = n
		}

		var rec renormdb.Record
		spins := [8]*spin.Spin{
			&rec.Config[0], &rec.Config[1], &rec.Config[2],
			&rec.Reduced[0],
			&rec.Config[3], &rec.Config[4], &rec.Config[5],
			&rec.Reduced[1],
		}
		for i, p := range spins {
			if cols[i] != 1 && cols[i] != -1 {
				return nil, fmt.Errorf("%s line %d column %d: spin %d: %w", msg, line, i+1, cols[i], ErrBadRow)
			}
			*p = spin.Spin(cols[i])
		}
		rec.H1, rec.H2 = cols[8], cols[9]

		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s %w", msg, err)
	}

	return records, nil
}

// ParseSums reads the aggregate artifact back into its two term lists,
// first the equal line, then the unequal one.
func ParseSums(r io.Reader) ([]Term, []Term, error) {
	const msg = "ParseSums:"

	scanner := bufio.NewScanner(r)

	equal, err := parseSumLine(scanner, EqualPrefix)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %w", msg, err)
	}
	unequal, err := parseSumLine(scanner, UnequalPrefix)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %w", msg, err)
	}

	return equal, unequal, nil
}

func parseSumLine(scanner *bufio.Scanner, prefix string) ([]Term, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing %q line: %w", prefix, ErrBadSumLine)
	}

	line := scanner.Text()
	if !strings.HasPrefix(line, prefix+" = ") {
		return nil, fmt.Errorf("%q: %w", line, ErrBadSumLine)
	}

	var terms []Term
	for _, part := range strings.Split(strings.TrimPrefix(line, prefix+" = "), "+ ") {
		var t Term
		if _, err := fmt.Sscanf(part, "%d Exp[%d k]", &t.Count, &t.Energy); err != nil {
			return nil, fmt.Errorf("term %q: %w", part, ErrBadSumLine)
		}
		terms = append(terms, t)
	}
	return terms, nil
}
