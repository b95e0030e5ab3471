// Package report renders and parses the two text artifacts: the raw
// per-configuration table and the renormalized symbolic sums.
package report

import (
	"fmt"
	"io"
	"os"

	"renormising/internal/renormdb"
)

// TableHeader the first line of the raw table artifact
const TableHeader = "s1 s2 s3\t s1'\ts4 s5 s6\ts2'\t\tH\t  H'"

const (
	// EqualPrefix opens the s1' == s2' sum line
	EqualPrefix = "Exp[A(k)+2k']"
	// UnequalPrefix opens the s1' != s2' sum line
	UnequalPrefix = "Exp[A(k)-2k']"
)

// WriteTable writes the header and one row per record, in the order
// records are given (mask order after Survey.Run).
func WriteTable(w io.Writer, records []renormdb.Record) error {
	if _, err := fmt.Fprintln(w, TableHeader); err != nil {
		return err
	}
	for _, rec := range records {
		_, err := fmt.Fprintf(w, "%3d%3d%3d\t%3d\t%3d%3d%3d\t%3d\t\t%3d\t%3d\n",
			rec.Config[0], rec.Config[1], rec.Config[2],
			rec.Reduced[0],
			rec.Config[3], rec.Config[4], rec.Config[5],
			rec.Reduced[1],
			rec.H1, rec.H2)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSums writes the two aggregate lines, terms ascending by energy,
// "+ " between terms and none after the last.
func WriteSums(w io.Writer, sv *renormdb.Survey) error {
	if err := writeSumLine(w, EqualPrefix, sv.EachEqual); err != nil {
		return err
	}
	return writeSumLine(w, UnequalPrefix, sv.EachUnequal)
}

func writeSumLine(w io.Writer, prefix string, each func(func(energy, count int))) error {
	if _, err := fmt.Fprintf(w, "%s = ", prefix); err != nil {
		return err
	}

	var err error
	firstIter := true
	each(func(energy, count int) {
		if err != nil {
			return
		}
		if firstIter {
			firstIter = false
		} else {
			_, err = fmt.Fprint(w, "+ ")
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintf(w, "%d Exp[%d k]", count, energy)
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w)
	return err
}

// SaveTable writes the raw table artifact to name
func SaveTable(name string, sv *renormdb.Survey) error {
	return saveArtifact(name, func(w io.Writer) error {
		return WriteTable(w, sv.Records())
	})
}

// SaveSums writes the aggregate artifact to name
func SaveSums(name string, sv *renormdb.Survey) error {
	return saveArtifact(name, func(w io.Writer) error {
		return WriteSums(w, sv)
	})
}

func saveArtifact(name string, write func(io.Writer) error) error {
	file, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	if err = write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
