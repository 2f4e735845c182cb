// Package lpi2c is a polled LPI2C master.
package lpi2c

import (
	"tinygo.org/x/drivers"

	"boardcode-go/errcode"
	"boardcode-go/imxrt/periph"
	"boardcode-go/imxrt/ral"
	"boardcode-go/x/mathx"
)

// Register offsets from the instance base.
const (
	MCR    = 0x10
	MSR    = 0x14
	MCFGR1 = 0x24
	MCCR0  = 0x48
	MTDR   = 0x60
	MRDR   = 0x70
)

// MCR bits.
const (
	mcrMEN = 1 << 0
	mcrRST = 1 << 1
	mcrRTF = 1 << 8
	mcrRRF = 1 << 9
)

// MSR bits. Everything from EPF up is write-one-to-clear.
const (
	MsrTDF  = 1 << 0
	MsrRDF  = 1 << 1
	MsrEPF  = 1 << 8
	MsrSDF  = 1 << 9
	MsrNDF  = 1 << 10
	MsrALF  = 1 << 11
	MsrFEF  = 1 << 12
	MsrPLTF = 1 << 13

	msrW1C = MsrEPF | MsrSDF | MsrNDF | MsrALF | MsrFEF | MsrPLTF
)

// MTDR commands.
const (
	CmdTransmit = 0
	CmdReceive  = 1
	CmdStop     = 2
	CmdStart    = 4
)

// MRDR_RXEMPTY.
const MrdrRxEmpty = 1 << 14

var (
	mcfgr1Prescale = ral.Field{Shift: 0, Width: 3}
	mccr0ClkLo     = ral.Field{Shift: 0, Width: 6}
	mccr0ClkHi     = ral.Field{Shift: 8, Width: 6}
	mccr0SetHold   = ral.Field{Shift: 16, Width: 6}
	mccr0DataVd    = ral.Field{Shift: 24, Width: 6}
)

const (
	clkLoMin = 3
	clkMax   = 63
	// maxRead is the most bytes one receive command can ask for.
	maxRead = 256
)

// Timing is an MCFGR1/MCCR0 setting.
type Timing struct {
	Prescale  uint32 // functional clock divided by 1<<Prescale
	ClkLo     uint32
	ClkHi     uint32
	SetHold   uint32
	DataValid uint32
}

// sclLatency is the synchroniser delay with no glitch filter, in prescaled
// cycles.
func sclLatency(prescale uint32) uint32 { return 2 >> prescale }

// Hz returns the SCL frequency t gives from srcHz.
func (t Timing) Hz(srcHz uint32) uint32 {
	return (srcHz >> t.Prescale) / (t.ClkLo + 1 + t.ClkHi + 1 + sclLatency(t.Prescale))
}

// ComputeTiming picks the smallest prescaler whose SCL period fits the
// CLKLO/CLKHI fields, splitting the period 2:1 low to high. The period is
// rounded up, so SCL never runs faster than baud.
func ComputeTiming(srcHz, baud uint32) (Timing, error) {
	if baud == 0 {
		return Timing{}, errcode.Wrap(errcode.InvalidParams, "lpi2c.ComputeTiming", "zero baud")
	}
	for p := uint32(0); p <= mcfgr1Prescale.Max(); p++ {
		period := mathx.CeilDiv(srcHz>>p, baud)
		overhead := 2 + sclLatency(p)
		if period < overhead+clkLoMin+1 {
			break
		}
		cycles := period - overhead
		hi := cycles / 3
		lo := cycles - hi
		if lo > clkMax || hi > clkMax {
			continue
		}
		return Timing{Prescale: p, ClkLo: lo, ClkHi: hi, SetHold: hi, DataValid: hi / 2}, nil
	}
	return Timing{}, errcode.Wrap(errcode.InvalidParams, "lpi2c.ComputeTiming", "baud out of range")
}

// Master drives one LPI2C instance as bus master.
type Master struct {
	f    ral.File
	inst *periph.Instance
	baud uint32
}

var _ drivers.I2C = (*Master)(nil)

// NewMaster binds the claimed instance to f.
func NewMaster(f ral.File, inst *periph.Instance) *Master {
	return &Master{f: f, inst: inst}
}

func (m *Master) reg(off uint32) ral.Register { return m.inst.Base().Offset(off) }

// Configure resets the controller and programs SCL for baud from the LPI2C
// root frequency srcHz.
func (m *Master) Configure(srcHz, baud uint32) error {
	if !m.inst.Clocked(m.f) {
		return errcode.Wrap(errcode.ClockGated, "lpi2c.Configure", m.inst.ID().String())
	}
	t, err := ComputeTiming(srcHz, baud)
	if err != nil {
		return err
	}
	m.f.Write(m.reg(MCR), mcrRST)
	m.f.Write(m.reg(MCR), 0)

	m.f.Write(m.reg(MCFGR1), mcfgr1Prescale.Insert(0, t.Prescale))
	m.f.Write(m.reg(MCCR0),
		mccr0ClkLo.Insert(0, t.ClkLo)|
			mccr0ClkHi.Insert(0, t.ClkHi)|
			mccr0SetHold.Insert(0, t.SetHold)|
			mccr0DataVd.Insert(0, t.DataValid))

	m.f.Write(m.reg(MCR), mcrMEN)
	m.baud = t.Hz(srcHz)
	return nil
}

// Baud returns the achieved SCL rate, or 0 before Configure.
func (m *Master) Baud() uint32 { return m.baud }

// Tx writes w to the target at 7-bit addr, then reads len(r) bytes with a
// repeated start. Either slice may be empty; with both empty Tx probes the
// address.
func (m *Master) Tx(addr uint16, w, r []byte) error {
	if !m.inst.Clocked(m.f) {
		return errcode.Wrap(errcode.ClockGated, "lpi2c.Tx", m.inst.ID().String())
	}
	if m.baud == 0 {
		return errcode.Wrap(errcode.InvalidParams, "lpi2c.Tx", "not configured")
	}
	if addr > 0x7F {
		return errcode.Wrap(errcode.InvalidParams, "lpi2c.Tx", "address")
	}
	m.f.Write(m.reg(MSR), msrW1C)

	err := m.transfer(uint32(addr), w, r)
	if err != nil {
		m.abort()
	}
	return err
}

func (m *Master) transfer(addr uint32, w, r []byte) error {
	if len(w) > 0 || len(r) == 0 {
		if err := m.push(CmdStart, addr<<1); err != nil {
			return err
		}
		for _, b := range w {
			if err := m.push(CmdTransmit, uint32(b)); err != nil {
				return err
			}
		}
	}
	for off := 0; off < len(r); off += maxRead {
		chunk := r[off:]
		if len(chunk) > maxRead {
			chunk = chunk[:maxRead]
		}
		if err := m.push(CmdStart, addr<<1|1); err != nil {
			return err
		}
		if err := m.push(CmdReceive, uint32(len(chunk)-1)); err != nil {
			return err
		}
		for i := range chunk {
			b, err := m.pop()
			if err != nil {
				return err
			}
			chunk[i] = b
		}
	}
	if err := m.push(CmdStop, 0); err != nil {
		return err
	}
	return m.waitStop()
}

// push queues one command once the transmit FIFO has room.
func (m *Master) push(cmd, data uint32) error {
	for i := 0; i < ral.PollBudget; i++ {
		s := m.f.Read(m.reg(MSR))
		if err := statusErr(s); err != nil {
			return err
		}
		if s&MsrTDF != 0 {
			m.f.Write(m.reg(MTDR), cmd<<8|data&0xFF)
			return nil
		}
	}
	return errcode.Wrap(errcode.Timeout, "lpi2c.Tx", "transmit fifo")
}

func (m *Master) pop() (byte, error) {
	for i := 0; i < ral.PollBudget; i++ {
		if err := statusErr(m.f.Read(m.reg(MSR))); err != nil {
			return 0, err
		}
		v := m.f.Read(m.reg(MRDR))
		if v&MrdrRxEmpty == 0 {
			return byte(v), nil
		}
	}
	return 0, errcode.Wrap(errcode.Timeout, "lpi2c.Tx", "receive fifo")
}

func (m *Master) waitStop() error {
	for i := 0; i < ral.PollBudget; i++ {
		s := m.f.Read(m.reg(MSR))
		if err := statusErr(s); err != nil {
			return err
		}
		if s&MsrSDF != 0 {
			m.f.Write(m.reg(MSR), MsrSDF)
			return nil
		}
	}
	return errcode.Wrap(errcode.Timeout, "lpi2c.Tx", "stop condition")
}

// abort drops queued commands and releases the bus.
func (m *Master) abort() {
	ral.SetBits(m.f, m.reg(MCR), mcrRTF|mcrRRF)
	m.f.Write(m.reg(MTDR), CmdStop<<8)
	m.f.Write(m.reg(MSR), msrW1C)
}

func statusErr(s uint32) error {
	switch {
	case s&MsrNDF != 0:
		return errcode.Nack
	case s&MsrALF != 0:
		return errcode.ArbitrationLost
	case s&(MsrFEF|MsrPLTF) != 0:
		return errcode.BusFault
	}
	return nil
}

// WriteRegister writes buf to register reg of the target at addr.
func (m *Master) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	w := make([]byte, 0, 1+len(buf))
	w = append(w, reg)
	w = append(w, buf...)
	return m.Tx(uint16(addr), w, nil)
}

// ReadRegister reads len(buf) bytes starting at register reg.
func (m *Master) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return m.Tx(uint16(addr), []byte{reg}, buf)
}
