//go:build !imxrt1010

package platform

import (
	"io"
	"os"
	"sync"

	"boardcode-go/imxrt/ccm/analog"
	"boardcode-go/imxrt/dcdc"
	"boardcode-go/imxrt/lpi2c"
	"boardcode-go/imxrt/lpuart"
	"boardcode-go/imxrt/ral"
	"boardcode-go/imxrt/ral/sim"
)

var (
	hostOnce sync.Once
	hostFile *sim.File
)

func registers() ral.File {
	hostOnce.Do(func() {
		hostFile = NewSim(os.Stdout)
	})
	return hostFile
}

// Reset values of the registers bring-up reads before writing.
const (
	resetCCGR     = 0xFFFF_FFFF
	resetDCDCReg3 = 0x0E // TRG: 1150 mV
	resetPLLENET  = analog.PLL6PowerDown | analog.PLL6Bypass | 0x1

	// dcdcSettleReads is how many status reads the regulator takes to
	// report OK after a new target.
	dcdcSettleReads = 8
)

var uartBases = []ral.Register{ral.LPUART1Base, ral.LPUART2Base, ral.LPUART3Base, ral.LPUART4Base}

var i2cBases = []ral.Register{ral.LPI2C1Base, ral.LPI2C2Base}

// NewSim returns a simulated 1010 just out of reset. Bytes sent by any
// LPUART are copied to console, which may be nil. The I²C buses have no
// targets attached, so every address is NACKed.
func NewSim(console io.Writer) *sim.File {
	f := sim.New()
	for i := uint32(0); i < 7; i++ {
		f.Poke(ral.CCM_CCGR0.Offset(4*i), resetCCGR)
	}
	modelDCDC(f)
	modelPLL6(f)
	for _, b := range uartBases {
		modelLPUART(f, b, console)
	}
	for _, b := range i2cBases {
		modelLPI2C(f, b)
	}
	return f
}

func modelDCDC(f *sim.File) {
	var (
		mu      sync.Mutex
		pending int
	)
	f.Poke(ral.DCDC_REG3, resetDCDCReg3)
	f.Poke(ral.DCDC_REG0, dcdc.Reg0StsDcOK)
	f.OnWrite(ral.DCDC_REG3, func(f *sim.File, _ uint32) {
		mu.Lock()
		pending = dcdcSettleReads
		mu.Unlock()
		f.Poke(ral.DCDC_REG0, f.Peek(ral.DCDC_REG0)&^dcdc.Reg0StsDcOK)
	})
	f.OnRead(ral.DCDC_REG0, func(f *sim.File) uint32 {
		mu.Lock()
		defer mu.Unlock()
		v := f.Peek(ral.DCDC_REG0)
		if pending > 0 {
			pending--
			if pending == 0 {
				v |= dcdc.Reg0StsDcOK
				f.Poke(ral.DCDC_REG0, v)
			}
		}
		return v
	})
}

// modelPLL6 locks the PLL as soon as it is powered.
func modelPLL6(f *sim.File) {
	f.Poke(ral.CCM_ANALOG_PLL_ENET, resetPLLENET)
	f.OnWrite(ral.CCM_ANALOG_PLL_ENET, func(f *sim.File, v uint32) {
		if v&analog.PLL6PowerDown == 0 {
			v |= analog.PLL6Lock
		} else {
			v &^= analog.PLL6Lock
		}
		f.Poke(ral.CCM_ANALOG_PLL_ENET, v)
	})
}

// modelLPUART transmits instantly.
func modelLPUART(f *sim.File, base ral.Register, out io.Writer) {
	f.Poke(base.Offset(lpuart.STAT), lpuart.StatTDRE|lpuart.StatTC)
	data := base.Offset(lpuart.DATA)
	f.Untraced(data)
	if out == nil {
		return
	}
	f.OnWrite(data, func(_ *sim.File, v uint32) {
		out.Write([]byte{byte(v)})
	})
}

func modelLPI2C(f *sim.File, base ral.Register) {
	var (
		mu    sync.Mutex
		flags uint32
	)
	f.OnRead(base.Offset(lpi2c.MSR), func(*sim.File) uint32 {
		mu.Lock()
		defer mu.Unlock()
		return flags | lpi2c.MsrTDF
	})
	f.OnWrite(base.Offset(lpi2c.MSR), func(_ *sim.File, v uint32) {
		mu.Lock()
		flags &^= v
		mu.Unlock()
	})
	f.OnWrite(base.Offset(lpi2c.MTDR), func(_ *sim.File, v uint32) {
		mu.Lock()
		defer mu.Unlock()
		switch v >> 8 & 7 {
		case lpi2c.CmdStart:
			flags |= lpi2c.MsrNDF
		case lpi2c.CmdStop:
			flags |= lpi2c.MsrSDF
		}
	})
	f.OnRead(base.Offset(lpi2c.MRDR), func(*sim.File) uint32 { return lpi2c.MrdrRxEmpty })
}
