//go:build !imxrt1010

package platform

import (
	"bytes"
	"testing"

	"boardcode-go/errcode"
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/ccm/analog"
	"boardcode-go/imxrt/dcdc"
	"boardcode-go/imxrt/lpi2c"
	"boardcode-go/imxrt/lpuart"
	"boardcode-go/imxrt/periph"
	"boardcode-go/imxrt/ral"
	"boardcode-go/imxrt/runmode"
)

func TestRegistersIsShared(t *testing.T) {
	if Registers() != Registers() {
		t.Fatal("Registers returned two files")
	}
}

func TestSimStartsAtReset(t *testing.T) {
	f := NewSim(nil)
	if !ccm.IsOn(f, ccm.GateLPUART1) || !ccm.IsOn(f, ccm.GateDMA) {
		t.Fatal("gates not on at reset")
	}
	if got := dcdc.Millivolts(f); got != 1150 {
		t.Fatalf("reset target = %d mV", got)
	}
	if f.Peek(ral.CCM_ANALOG_PLL_ENET)&analog.PLL6PowerDown == 0 {
		t.Fatal("PLL6 powered at reset")
	}
}

func TestSimRegulatorSettles(t *testing.T) {
	f := NewSim(nil)
	if err := dcdc.SetTargetPower(f, runmode.Overdrive); err != nil {
		t.Fatal(err)
	}
	if f.Read(ral.DCDC_REG0)&dcdc.Reg0StsDcOK == 0 {
		t.Fatal("regulator not OK after settling")
	}
}

func TestSimPLLLocks(t *testing.T) {
	if err := analog.RestartPLL6(NewSim(nil)); err != nil {
		t.Fatal(err)
	}
}

func TestSimConsoleOutput(t *testing.T) {
	var out bytes.Buffer
	f := NewSim(&out)
	inst, _ := periph.NewRegistry().Claim("console", periph.LPUART1)
	c := lpuart.NewConsole(f, inst)
	if err := c.Configure(80_000_000, 115_200); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Write([]byte("hi")); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hi" {
		t.Fatalf("console = %q", out.String())
	}
	for _, a := range f.Trace() {
		if a.Reg == ral.LPUART1Base.Offset(lpuart.DATA) {
			t.Fatal("console data traced")
		}
	}
}

func TestSimI2CHasNoTargets(t *testing.T) {
	f := NewSim(nil)
	inst, _ := periph.NewRegistry().Claim("i2c", periph.LPI2C1)
	m := lpi2c.NewMaster(f, inst)
	if err := m.Configure(20_000_000, 100_000); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := m.Tx(0x44, []byte{0}, nil); errcode.Of(err) != errcode.Nack {
			t.Fatalf("attempt %d: err = %v", i, err)
		}
	}
}
