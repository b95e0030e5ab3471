package spin

// Spin a single Ising spin, always +1 or -1
type Spin int

const (
	Up   Spin = 1
	Down Spin = -1
)

const (
	// Sites count in the fine system ring
	Sites = 6
	// BlockSites count in one majority-rule block
	BlockSites = 3
	// Masks count of distinct configurations
	Masks = 1 << Sites
)

// Configuration the fine system: Sites spins on a periodic ring,
// site 6 adjacent to site 1
type Configuration [Sites]Spin

// Reduced the coarse system: one spin per block
type Reduced [2]Spin

// FromMask decodes a 6-bit mask into a Configuration.
// The most significant bit is site 1, bit value 1 is Up.
func FromMask(mask int) Configuration {
	var c Configuration
	for i := 0; i < Sites; i++ {
		if mask&(1<<(Sites-1-i)) != 0 {
			c[i] = Up
		} else {
			c[i] = Down
		}
	}
	return c
}

// Mask re-encodes the Configuration into its 6-bit mask
func (c Configuration) Mask() int {
	mask := 0
	for i := 0; i < Sites; i++ {
		if c[i] == Up {
			mask |= 1 << (Sites - 1 - i)
		}
	}
	return mask
}

// Reduce maps the Configuration to the coarse pair by majority rule
// over sites {1,2,3} and {4,5,6}
func (c Configuration) Reduce() Reduced {
	return Reduced{
		MajorityRule(c[:BlockSites]),
		MajorityRule(c[BlockSites:]),
	}
}

// Energy the nearest neighbor interaction sum over a periodic ring,
// unit coupling, no magnetic field
func Energy(s []Spin) int {
	e := 0
	for i := 0; i < len(s)-1; i++ {
		e += int(s[i]) * int(s[i+1])
	}
	e += int(s[len(s)-1]) * int(s[0])
	return e
}

// MajorityRule reduces a block to one spin by the sign of its sum.
// A block of odd length cannot sum to zero, so the rule is decisive.
func MajorityRule(block []Spin) Spin {
	sum := 0
	for _, s := range block {
		sum += int(s)
	}
	if sum > 0 {
		return Up
	}
	return Down
}
