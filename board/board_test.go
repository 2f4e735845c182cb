package board

import (
	"os"
	"os/exec"
	"sync"
	"testing"

	"boardcode-go/errcode"
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/periph"
	"boardcode-go/imxrt/ral"
	"boardcode-go/platform"
)

func bringup(t *testing.T) *Board {
	t.Helper()
	var g Guard
	b, err := g.Take().Bringup(platform.NewSim(nil), IMXRT1010EVK)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestGuardTakeOnce(t *testing.T) {
	var g Guard
	var wg sync.WaitGroup
	var mu sync.Mutex
	got := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Take() != nil {
				mu.Lock()
				got++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if got != 1 {
		t.Fatalf("%d tokens issued", got)
	}
}

func TestTokenIsSpent(t *testing.T) {
	var g Guard
	tok := g.Take()
	if _, err := tok.Bringup(platform.NewSim(nil), IMXRT1010EVK); err != nil {
		t.Fatal(err)
	}
	if _, err := tok.Bringup(platform.NewSim(nil), IMXRT1010EVK); errcode.Of(err) != errcode.AlreadyInitialized {
		t.Fatalf("reuse err = %v", err)
	}
	var none *Token
	if _, err := none.Bringup(platform.NewSim(nil), IMXRT1010EVK); errcode.Of(err) != errcode.AlreadyInitialized {
		t.Fatalf("nil token err = %v", err)
	}
}

func TestHandlesAreDistinct(t *testing.T) {
	b := bringup(t)
	handles := []*periph.Instance{
		b.DMA, b.PIT, b.GPT1, b.GPT2, b.LED.Port, b.SPI,
	}
	seen := map[periph.ID]bool{}
	for _, h := range handles {
		if h == nil {
			t.Fatal("nil handle")
		}
		if seen[h.ID()] {
			t.Fatalf("%v handed out twice", h.ID())
		}
		seen[h.ID()] = true
	}
	for _, id := range []periph.ID{periph.LPUART1, periph.LPI2C1} {
		if b.Periph.Owner(id) == "" {
			t.Fatalf("%v not owned after bring-up", id)
		}
		if _, err := b.Periph.Claim("again", id); errcode.Of(err) != errcode.PeripheralInUse {
			t.Fatalf("%v claimable twice: %v", id, err)
		}
	}
	if b.LED.Port.ID() != periph.GPIO1 || b.LED.Pin != 11 {
		t.Fatalf("LED = %v pin %d", b.LED.Port.ID(), b.LED.Pin)
	}
}

func TestBringupClocksBoardPeripherals(t *testing.T) {
	b := bringup(t)
	for _, l := range ccm.Union(ccm.CommonGates, IMXRT1010EVK.Gates) {
		if !ccm.IsOn(b.Registers, l) {
			t.Fatalf("%v off", l)
		}
	}
	for _, l := range []ccm.Locator{ccm.GateLPUART2, ccm.GateLPI2C2, ccm.GateLPSPI2} {
		if ccm.IsOn(b.Registers, l) {
			t.Fatalf("%v on", l)
		}
	}
	if b.Console.Baud() == 0 || b.I2C.Baud() != 100_000 {
		t.Fatalf("console %d baud, i2c %d", b.Console.Baud(), b.I2C.Baud())
	}
}

func TestBringupFailsWithoutPLL(t *testing.T) {
	f := platform.NewSim(nil)
	f.OnWrite(ral.CCM_ANALOG_PLL_ENET, nil)
	var g Guard
	if _, err := g.Take().Bringup(f, IMXRT1010EVK); errcode.Of(err) != errcode.Timeout {
		t.Fatalf("err = %v", err)
	}
}

func TestVectors(t *testing.T) {
	b := bringup(t)
	v := b.Vectors
	if v.Source(IntConsole) != periph.LPUART1 || v.Source(IntGPT2) != periph.GPT2 {
		t.Fatal("interrupt sources not from descriptor")
	}
	v.Dispatch(IntButton)
	if v.Unhandled(IntButton) != 1 {
		t.Fatal("default handler not reached")
	}
	hits := 0
	if prev := v.Patch(IntPIT, func() { hits++ }); prev != nil {
		t.Fatal("previous handler not the default")
	}
	v.Dispatch(IntPIT)
	if hits != 1 || v.Unhandled(IntPIT) != 0 {
		t.Fatalf("hits = %d, unhandled = %d", hits, v.Unhandled(IntPIT))
	}
	v.Patch(IntPIT, nil)
	v.Dispatch(IntPIT)
	if hits != 1 || v.Unhandled(IntPIT) != 1 {
		t.Fatal("nil patch did not restore the default")
	}
}

func TestVectorsRejectInvalidInterrupt(t *testing.T) {
	v := newVectors(IMXRT1010EVK.Interrupts)
	calls := []struct {
		name string
		fn   func()
	}{
		{"Patch", func() { v.Patch(NumInterrupts, func() {}) }},
		{"Dispatch", func() { v.Dispatch(NumInterrupts) }},
		{"Source", func() { v.Source(NumInterrupts) }},
		{"Unhandled", func() { v.Unhandled(NumInterrupts) }},
	}
	for _, c := range calls {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s accepted an invalid interrupt", c.name)
				}
			}()
			c.fn()
		}()
	}
}

func TestInterruptNames(t *testing.T) {
	for i := Interrupt(0); i < NumInterrupts; i++ {
		if i.String() == "" || i.String() == "invalid" {
			t.Fatalf("%d unnamed", i)
		}
	}
}

const newChildEnv = "BOARD_NEW_CHILD"

// The process guard lives for the whole test binary, so New runs in a fresh
// child process each time and the parent never touches it.
func TestNewExactlyOnce(t *testing.T) {
	if os.Getenv(newChildEnv) == "1" {
		newExactlyOnce(t)
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=^TestNewExactlyOnce$", "-test.count=1")
	cmd.Env = append(os.Environ(), newChildEnv+"=1")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("child: %v\n%s", err, out)
	}
}

func newExactlyOnce(t *testing.T) {
	b := New()
	if b == nil || b.Console == nil {
		t.Fatal("New returned no board")
	}
	if _, err := TryNew(); errcode.Of(err) != errcode.AlreadyInitialized {
		t.Fatalf("TryNew after New: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("second New did not panic")
		}
	}()
	New()
}
