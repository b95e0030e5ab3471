package renormdb

import (
	"fmt"

	"renormising/internal/spin"
)

// Record one enumerated case: the fine configuration, its coarse
// pair, and both energies. Immutable once built.
type Record struct {
	Config  spin.Configuration
	Reduced spin.Reduced
	H1      int
	H2      int
}

func newRecord(mask int) Record {
	cfg := spin.FromMask(mask)
	reduced := cfg.Reduce()
	return Record{
		Config:  cfg,
		Reduced: reduced,
		H1:      spin.Energy(cfg[:]),
		H2:      spin.Energy(reduced[:]),
	}
}

// Equal reports whether both coarse spins agree
func (r Record) Equal() bool {
	return r.Reduced[0] == r.Reduced[1]
}

func (r Record) String() string {
	return fmt.Sprintf("mask=%d config=%v reduced=%v H1=%d H2=%d",
		r.Config.Mask(), r.Config, r.Reduced, r.H1, r.H2)
}
