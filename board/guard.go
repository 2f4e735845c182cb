package board

import (
	"sync/atomic"

	"boardcode-go/errcode"
	"boardcode-go/imxrt/clock"
	"boardcode-go/imxrt/lpi2c"
	"boardcode-go/imxrt/lpuart"
	"boardcode-go/imxrt/periph"
	"boardcode-go/imxrt/ral"
	"boardcode-go/platform"
)

// Guard lets bring-up happen once. The zero value is ready.
type Guard struct {
	taken atomic.Bool
}

// Take returns the bring-up token the first time it is called and nil on
// every later call, from any goroutine.
func (g *Guard) Take() *Token {
	if !g.taken.CompareAndSwap(false, true) {
		return nil
	}
	return &Token{}
}

// noCopy trips `go vet -copylocks` when a Token is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Token is the right to bring the board up once. Only Guard.Take makes
// them; hold it by pointer.
type Token struct {
	_     noCopy
	spent atomic.Bool
}

// Bringup configures the board described by d through f and hands over its
// peripherals. The token is spent whether or not it succeeds.
func (t *Token) Bringup(f ral.File, d Descriptor) (*Board, error) {
	if t == nil || !t.spent.CompareAndSwap(false, true) {
		return nil, errcode.Wrap(errcode.AlreadyInitialized, "board.Bringup", "token spent")
	}
	println("[board] bring-up", d.Name, "mode", d.RunMode.String())

	b := &Board{
		Descriptor: d,
		Registers:  f,
		Periph:     periph.NewRegistry(),
		Vectors:    newVectors(d.Interrupts),
	}
	if err := clock.Configure(f, d.RunMode, d.Gates); err != nil {
		return nil, err
	}
	println("[board] clocks: ahb", clock.AHBFrequency(d.RunMode), "ipg", clock.IPGFrequency(d.RunMode))

	var err error
	if b.Common, err = takeCommon(b.Periph); err != nil {
		return nil, err
	}
	if b.Specifics, err = takeSpecifics(f, b.Periph, d); err != nil {
		return nil, err
	}
	println("[board] ready")
	return b, nil
}

func takeCommon(r *periph.Registry) (c Common, err error) {
	claims := []struct {
		dst **periph.Instance
		id  periph.ID
	}{
		{&c.DMA, periph.DMA},
		{&c.PIT, periph.PIT},
		{&c.GPT1, periph.GPT1},
		{&c.GPT2, periph.GPT2},
	}
	for _, cl := range claims {
		if *cl.dst, err = r.Claim("common", cl.id); err != nil {
			return Common{}, err
		}
	}
	return c, nil
}

func takeSpecifics(f ral.File, r *periph.Registry, d Descriptor) (Specifics, error) {
	var s Specifics
	m := d.RunMode

	gpio, err := r.Claim("led", d.LED.Port)
	if err != nil {
		return Specifics{}, err
	}
	s.LED = LED{Port: gpio, Pin: d.LED.Pin}

	uart, err := r.Claim("console", d.Console.Instance)
	if err != nil {
		return Specifics{}, err
	}
	s.Console = lpuart.NewConsole(f, uart)
	if err := s.Console.Configure(clock.UARTFrequency(m), d.Console.Baud); err != nil {
		return Specifics{}, err
	}

	i2c, err := r.Claim("i2c", d.I2C.Instance)
	if err != nil {
		return Specifics{}, err
	}
	s.I2C = lpi2c.NewMaster(f, i2c)
	if err := s.I2C.Configure(clock.LPI2CFrequency(m), d.I2C.Baud); err != nil {
		return Specifics{}, err
	}

	if s.SPI, err = r.Claim("spi", d.SPI); err != nil {
		return Specifics{}, err
	}
	return s, nil
}

var process Guard

// TryNew brings up the selected board on the platform register file. Any
// call after the first returns errcode.AlreadyInitialized.
func TryNew() (*Board, error) {
	tok := process.Take()
	if tok == nil {
		return nil, errcode.Wrap(errcode.AlreadyInitialized, "board.New", Selected.Name)
	}
	return tok.Bringup(platform.Registers(), Selected)
}

// New is TryNew for use at the top of main. A second call, or a bring-up
// that fails, panics.
func New() *Board {
	b, err := TryNew()
	if err != nil {
		println("[board] fatal:", err.Error())
		panic(err)
	}
	return b
}
