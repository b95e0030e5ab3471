package renormdb

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"renormising/internal/spin"
)

type GUIDType string

// runHeader identifies one enumeration run in the logs
type runHeader struct {
	Guid   GUIDType
	OpTime time.Time
}

func newRunHeader() runHeader {
	return runHeader{
		Guid:   GUIDType(uuid.New().String()),
		OpTime: time.Now(),
	}
}

// Survey the complete enumeration of the 6-spin ring: all 64 records
// plus the two coarse-graining buckets keyed by fine energy.
//
// Run builds everything in one pass, nothing changes afterwards.
type Survey struct {
	header  runHeader
	records []Record

	equal   *energyTree
	unequal *energyTree

	sugar *zap.SugaredLogger
}

func NewSurvey(logger *zap.Logger) *Survey {
	return &Survey{
		header:  newRunHeader(),
		equal:   newEnergyTree(),
		unequal: newEnergyTree(),
		sugar:   logger.Sugar(),
	}
}

// Run enumerates masks 0..63 in ascending order, reduces every
// configuration and counts it into the equal or unequal bucket.
func (s *Survey) Run() {
	s.sugar.Infow("survey start", "Guid", s.header.Guid, "OpTime", s.header.OpTime)

	s.records = make([]Record, 0, spin.Masks)
	for mask := 0; mask < spin.Masks; mask++ {
		rec := newRecord(mask)
		s.records = append(s.records, rec)

		if rec.Equal() {
			s.equal.add(rec.H1)
		} else {
			s.unequal.add(rec.H1)
		}
		s.sugar.Debugw("record", "rec", rec)
	}

	s.sugar.Infow("survey done",
		"Guid", s.header.Guid,
		"records", len(s.records),
		"equal", s.equal.total(),
		"unequal", s.unequal.total(),
	)
	s.sugar.Debugln(s.equal)
	s.sugar.Debugln(s.unequal)
}

// Guid returns the run identifier
func (s *Survey) Guid() GUIDType {
	return s.header.Guid
}

// Records returns the 64 enumerated cases in mask order
func (s *Survey) Records() []Record {
	return s.records
}

// EachEqual walks the s1' == s2' bucket ascending by energy
func (s *Survey) EachEqual(f func(energy, count int)) {
	s.equal.ascend(f)
}

// EachUnequal walks the s1' != s2' bucket ascending by energy
func (s *Survey) EachUnequal(f func(energy, count int)) {
	s.unequal.ascend(f)
}

// Total returns the overall count in both buckets, 64 after Run
func (s *Survey) Total() int {
	return s.equal.total() + s.unequal.total()
}
