package ral

import "testing"

// mapFile is a minimal File for exercising the helpers.
type mapFile struct {
	regs   map[Register]uint32
	writes int
}

func (m *mapFile) Read(r Register) uint32     { return m.regs[r] }
func (m *mapFile) Write(r Register, v uint32) { m.regs[r] = v; m.writes++ }

func TestFieldInsertExtract(t *testing.T) {
	fd := Field{Reg: CCM_CBCDR, Shift: 10, Width: 3}
	if fd.Mask() != 0x1C00 {
		t.Fatalf("mask = %#x", fd.Mask())
	}
	w := fd.Insert(0xFFFF_FFFF, 5)
	if fd.Extract(w) != 5 || w|fd.Mask() != 0xFFFF_FFFF {
		t.Fatalf("insert produced %#x", w)
	}
}

func TestFieldInsertOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Field{Shift: 0, Width: 2}.Insert(0, 4)
}

func TestModifySkipsUnchangedWrite(t *testing.T) {
	f := &mapFile{regs: map[Register]uint32{CCM_CCGR0: 0xF0}}
	SetBits(f, CCM_CCGR0, 0x30)
	if f.writes != 0 {
		t.Fatalf("expected no write, got %d", f.writes)
	}
	ClearBits(f, CCM_CCGR0, 0x30)
	if f.writes != 1 || f.regs[CCM_CCGR0] != 0xC0 {
		t.Fatalf("got %#x after %d writes", f.regs[CCM_CCGR0], f.writes)
	}
}

func TestWaitGivesUp(t *testing.T) {
	f := &mapFile{regs: map[Register]uint32{}}
	if WaitSet(f, DCDC_REG0, 1) {
		t.Fatal("WaitSet succeeded on a bit that never sets")
	}
	if !WaitClear(f, DCDC_REG0, 1) {
		t.Fatal("WaitClear failed on a clear bit")
	}
}

func TestRegisterString(t *testing.T) {
	if CCM_CBCDR.String() != "CCM_CBCDR" {
		t.Fatalf("got %q", CCM_CBCDR.String())
	}
	if Register(0x4000_0010).String() != "0x40000010" {
		t.Fatalf("got %q", Register(0x4000_0010).String())
	}
}
