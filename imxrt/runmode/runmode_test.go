package runmode

import "testing"

func TestAllAreValid(t *testing.T) {
	modes := All()
	if len(modes) != int(numModes) {
		t.Fatalf("All() returned %d modes, want %d", len(modes), numModes)
	}
	for _, m := range modes {
		if !m.Valid() {
			t.Fatalf("mode %d reported invalid", m)
		}
	}
}

func TestSelect(t *testing.T) {
	if got := Select(Overdrive, 42); got != 42 {
		t.Fatalf("Select(Overdrive) = %d, want 42", got)
	}
	if Overdrive.String() != "overdrive" {
		t.Fatalf("String() = %q", Overdrive.String())
	}
}

func TestSelectInvalidPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for out-of-range run mode")
		}
	}()
	Select(RunMode(200), 1)
}

func TestParse(t *testing.T) {
	for _, m := range All() {
		got, ok := Parse(m.String())
		if !ok || got != m {
			t.Fatalf("Parse(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := Parse("turbo"); ok {
		t.Fatal("unknown mode parsed")
	}
}
