package ccm

import (
	"testing"

	"boardcode-go/errcode"
	"boardcode-go/imxrt/ral"
	"boardcode-go/imxrt/ral/sim"
)

// newFile returns a sim file with every gate on, as after reset.
func newFile() *sim.File {
	f := sim.New()
	for i := uint32(0); i < 7; i++ {
		f.Poke(ral.CCM_CCGR0.Offset(4*i), 0xFFFF_FFFF)
	}
	return f
}

func TestGateRoundTrip(t *testing.T) {
	f := newFile()
	for _, l := range Union(PerclkGates, UARTGates, LPI2CGates, LPSPIGates, CommonGates) {
		before := IsOn(f, l)
		Apply(f, OFF, l)
		if IsOn(f, l) {
			t.Fatalf("%v still on after OFF", l)
		}
		Apply(f, ON, l)
		if IsOn(f, l) != before {
			t.Fatalf("%v: clocked = %v after round trip, want %v", l, IsOn(f, l), before)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	f := newFile()
	Apply(f, OFF, UARTGates...)
	n := len(f.Trace())
	snapshot := f.Peek(ral.CCM_CCGR0)

	Apply(f, OFF, UARTGates...)
	if len(f.Trace()) != n {
		t.Fatalf("second OFF wrote %d more registers", len(f.Trace())-n)
	}
	if f.Peek(ral.CCM_CCGR0) != snapshot {
		t.Fatal("second OFF changed CCGR0")
	}
}

func TestApplyLeavesNeighboursAlone(t *testing.T) {
	f := newFile()
	Apply(f, OFF, GateLPSPI1)
	for _, l := range []Locator{GateLPSPI2, GatePIT, GateGPIO1} {
		if !IsOn(f, l) {
			t.Fatalf("%v turned off by LPSPI1 gate write", l)
		}
	}
	if got := f.Peek(ral.CCM_CCGR1); got != 0xFFFF_FFFC {
		t.Fatalf("CCGR1 = %#x, want 0xfffffffc", got)
	}
}

func TestUnionDeduplicates(t *testing.T) {
	u := Union(PerclkGates, CommonGates, []Locator{GatePIT})
	seen := map[Locator]bool{}
	for _, l := range u {
		if seen[l] {
			t.Fatalf("duplicate %v in union", l)
		}
		seen[l] = true
	}
	if !seen[GateDMA] || !seen[GateGPT2Serial] {
		t.Fatalf("union missing members: %v", u)
	}
}

func TestDividerEncoding(t *testing.T) {
	f := newFile()
	SetAHBDivider(f, 1)
	SetIPGDivider(f, 4)
	SetUARTDivider(f, 64)
	if got := AHB.Divider.Get(f); got != 0 {
		t.Fatalf("AHB_PODF = %d, want 0", got)
	}
	if got := IPG.Divider.Get(f); got != 3 {
		t.Fatalf("IPG_PODF = %d, want 3", got)
	}
	if got := UART.Divider.Get(f); got != 63 {
		t.Fatalf("UART_CLK_PODF = %d, want 63", got)
	}
}

func TestDividerOutOfRangePanics(t *testing.T) {
	for _, div := range []uint32{0, 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("IPG divider %d accepted", div)
				}
			}()
			SetIPGDivider(newFile(), div)
		}()
	}
}

func TestSelectionFields(t *testing.T) {
	f := newFile()
	SetAHBSelection(f, AHBPLL6)
	SetLPSPISelection(f, LPSPIPLL2)
	if f.Peek(ral.CCM_CBCMR) != 3<<18|2<<4 {
		t.Fatalf("CBCMR = %#x", f.Peek(ral.CCM_CBCMR))
	}
}

func TestWaitHandshakeTimesOut(t *testing.T) {
	f := newFile()
	f.Poke(ral.CCM_CDHIPR, cdhiprAHBPodfBusy)
	if err := WaitHandshake(f); errcode.Of(err) != errcode.Timeout {
		t.Fatalf("err = %v, want timeout", err)
	}
	f.Poke(ral.CCM_CDHIPR, 0)
	if err := WaitHandshake(f); err != nil {
		t.Fatal(err)
	}
}

func TestLowPowerMode(t *testing.T) {
	f := newFile()
	f.Poke(ral.CCM_CLPCR, 0x79)
	SetLowPowerMode(f, RemainInRun)
	if f.Peek(ral.CCM_CLPCR) != 0x78 {
		t.Fatalf("CLPCR = %#x", f.Peek(ral.CCM_CLPCR))
	}
}

func TestDividerLimitsMatchFields(t *testing.T) {
	cases := []struct {
		d   Domain
		max uint32
	}{
		{AHB, AHBDividerMax},
		{IPG, IPGDividerMax},
		{Perclk, PerclkDividerMax},
		{UART, UARTDividerMax},
		{LPI2C, LPI2CDividerMax},
		{LPSPI, LPSPIDividerMax},
	}
	for _, c := range cases {
		if c.d.DividerMax() != c.max {
			t.Fatalf("%s: field encodes up to %d, constant says %d", c.d.Name, c.d.DividerMax(), c.max)
		}
	}
}

func TestLocatorNames(t *testing.T) {
	if GateLPUART1.String() != "lpuart1" {
		t.Fatalf("got %q", GateLPUART1.String())
	}
	if got := Locator(6<<4 | 14).String(); got != "CCGR6.CG14" {
		t.Fatalf("got %q", got)
	}
}
