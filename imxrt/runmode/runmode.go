// Package runmode names the operating profiles a board can be built for.
//
// A run mode bundles a target frequency set with the core voltage that
// frequency set requires. The mode is chosen by the board descriptor at build
// time; nothing selects it at run time.
package runmode

// RunMode is a closed set of operating profiles.
type RunMode uint8

const (
	// Overdrive runs the core and buses at their highest rated frequencies.
	Overdrive RunMode = iota

	numModes
)

// All returns every run mode, in declaration order.
func All() []RunMode {
	return []RunMode{Overdrive}
}

func (m RunMode) String() string {
	return Select(m, "overdrive")
}

// Parse returns the run mode named s.
func Parse(s string) (RunMode, bool) {
	for _, m := range All() {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// Valid reports whether m is one of the declared run modes.
func (m RunMode) Valid() bool { return m < numModes }

// Select returns the table entry for m.
//
// Every per-mode table is written as a Select call with one argument per run
// mode. Adding a run mode adds a parameter here, so each table stops building
// until it has an entry for the new mode.
func Select[T any](m RunMode, overdrive T) T {
	switch m {
	case Overdrive:
		return overdrive
	}
	panic("runmode: invalid run mode")
}
