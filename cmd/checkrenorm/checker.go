package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"renormising/internal/config"
	"renormising/internal/renormdb"
	"renormising/internal/report"
	"renormising/internal/spin"
)

// legalEnergies the fine energies a 6-site periodic ±1 ring can take.
// Domain walls come in pairs, so the bond sum is 6 minus an even number
// of sign flips twice over.
var legalEnergies = map[int]bool{-6: true, -2: true, 2: true, 6: true}

// Checker re-derives everything the artifacts claim and complains
// about the first disagreement it finds.
type Checker struct {
	conf   *config.Config
	logger *zap.Logger
	sugar  *zap.SugaredLogger

	records []renormdb.Record
	equal   []report.Term
	unequal []report.Term
}

func NewChecker(conf *config.Config, logger *zap.Logger) *Checker {
	return &Checker{
		conf:   conf,
		logger: logger,
		sugar:  logger.Sugar(),
	}
}

// Run loads both artifacts and verifies them concurrently. The first
// violated property aborts the rest.
func (c *Checker) Run(ctx context.Context) error {
	if err := c.load(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.checkEnumeration(ctx) })
	g.Go(func() error { return c.checkRows(ctx) })
	g.Go(func() error { return c.checkBuckets(ctx) })
	g.Go(func() error { return c.checkArtifactBytes(ctx) })
	return g.Wait()
}

func (c *Checker) load() error {
	const msg = "load:"

	table, err := os.Open(c.conf.TableFile)
	if err != nil {
		return fmt.Errorf("%s %w", msg, err)
	}
	defer table.Close()

	c.records, err = report.ParseTable(table)
	if err != nil {
		return fmt.Errorf("%s %w", msg, err)
	}

	sums, err := os.Open(c.conf.RenormFile)
	if err != nil {
		return fmt.Errorf("%s %w", msg, err)
	}
	defer sums.Close()

	c.equal, c.unequal, err = report.ParseSums(sums)
	if err != nil {
		return fmt.Errorf("%s %w", msg, err)
	}

	c.sugar.Infow("artifacts loaded",
		"rows", len(c.records),
		"equalTerms", len(c.equal),
		"unequalTerms", len(c.unequal),
	)
	return nil
}

// checkEnumeration: 64 rows, one per mask, ascending
func (c *Checker) checkEnumeration(ctx context.Context) error {
	const msg = "checkEnumeration:"

	if len(c.records) != spin.Masks {
		return fmt.Errorf("%s %d rows, want %d", msg, len(c.records), spin.Masks)
	}
	for i, rec := range c.records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if mask := rec.Config.Mask(); mask != i {
			return fmt.Errorf("%s row %d encodes mask %d", msg, i, mask)
		}
	}
	c.sugar.Infow("enumeration ok", "rows", len(c.records))
	return nil
}

// checkRows: every energy and coarse spin in the table recomputes
func (c *Checker) checkRows(ctx context.Context) error {
	const msg = "checkRows:"

	for i, rec := range c.records {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, block := range [][]spin.Spin{rec.Config[:spin.BlockSites], rec.Config[spin.BlockSites:]} {
			sum := 0
			for _, s := range block {
				sum += int(s)
			}
			if sum == 0 {
				return fmt.Errorf("%s row %d: majority rule tie", msg, i)
			}
		}

		if reduced := rec.Config.Reduce(); reduced != rec.Reduced {
			return fmt.Errorf("%s row %d: reduced %v, recomputed %v", msg, i, rec.Reduced, reduced)
		}
		if h1 := spin.Energy(rec.Config[:]); h1 != rec.H1 {
			return fmt.Errorf("%s row %d: H %d, recomputed %d", msg, i, rec.H1, h1)
		}
		if h2 := spin.Energy(rec.Reduced[:]); h2 != rec.H2 {
			return fmt.Errorf("%s row %d: H' %d, recomputed %d", msg, i, rec.H2, h2)
		}
		if h2 := 2 * int(rec.Reduced[0]) * int(rec.Reduced[1]); h2 != rec.H2 {
			return fmt.Errorf("%s row %d: H' %d, want 2*s1'*s2' = %d", msg, i, rec.H2, h2)
		}
	}
	c.sugar.Infow("rows ok", "rows", len(c.records))
	return nil
}

// checkBuckets: the sum lines agree with counting the table rows
func (c *Checker) checkBuckets(ctx context.Context) error {
	const msg = "checkBuckets:"

	equal := make(map[int]int)
	unequal := make(map[int]int)
	for _, rec := range c.records {
		if rec.Equal() {
			equal[rec.H1]++
		} else {
			unequal[rec.H1]++
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	total := 0
	for _, terms := range [][]report.Term{c.equal, c.unequal} {
		for _, t := range terms {
			if !legalEnergies[t.Energy] {
				return fmt.Errorf("%s illegal energy %d", msg, t.Energy)
			}
			total += t.Count
		}
	}
	if total != spin.Masks {
		return fmt.Errorf("%s bucket counts sum to %d, want %d", msg, total, spin.Masks)
	}

	if err := compareTerms(c.equal, equal); err != nil {
		return fmt.Errorf("%s equal line: %w", msg, err)
	}
	if err := compareTerms(c.unequal, unequal); err != nil {
		return fmt.Errorf("%s unequal line: %w", msg, err)
	}

	c.sugar.Infow("buckets ok", "total", total)
	return nil
}

func compareTerms(terms []report.Term, counts map[int]int) error {
	if len(terms) != len(counts) {
		return fmt.Errorf("%d terms, counted %d energies", len(terms), len(counts))
	}
	prev := 0
	for i, t := range terms {
		if i > 0 && t.Energy <= prev {
			return fmt.Errorf("energies not ascending at Exp[%d k]", t.Energy)
		}
		prev = t.Energy
		if counts[t.Energy] != t.Count {
			return fmt.Errorf("%d Exp[%d k], counted %d", t.Count, t.Energy, counts[t.Energy])
		}
	}
	return nil
}

// checkArtifactBytes: a fresh run reproduces both files exactly
func (c *Checker) checkArtifactBytes(ctx context.Context) error {
	const msg = "checkArtifactBytes:"

	survey := renormdb.NewSurvey(c.logger)
	survey.Run()

	if err := ctx.Err(); err != nil {
		return err
	}

	var table bytes.Buffer
	if err := report.WriteTable(&table, survey.Records()); err != nil {
		return fmt.Errorf("%s %w", msg, err)
	}
	got, err := os.ReadFile(c.conf.TableFile)
	if err != nil {
		return fmt.Errorf("%s %w", msg, err)
	}
	if !bytes.Equal(table.Bytes(), got) {
		return fmt.Errorf("%s %s differs from a fresh run", msg, c.conf.TableFile)
	}

	var sums bytes.Buffer
	if err := report.WriteSums(&sums, survey); err != nil {
		return fmt.Errorf("%s %w", msg, err)
	}
	got, err = os.ReadFile(c.conf.RenormFile)
	if err != nil {
		return fmt.Errorf("%s %w", msg, err)
	}
	if !bytes.Equal(sums.Bytes(), got) {
		return fmt.Errorf("%s %s differs from a fresh run", msg, c.conf.RenormFile)
	}

	c.sugar.Infow("artifact bytes ok")
	return nil
}
