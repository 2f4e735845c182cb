package board

import (
	"sync"

	"boardcode-go/imxrt/periph"
)

// Interrupt is a board-level interrupt name. Each resolves to a handler
// through Vectors, so applications attach to "the console" rather than to a
// device IRQ number.
type Interrupt uint8

const (
	IntConsole Interrupt = iota
	IntButton
	IntDMAA
	IntDMAB
	IntPIT
	IntGPT1
	IntGPT2
	NumInterrupts
)

var interruptNames = [NumInterrupts]string{"console", "button", "dma_a", "dma_b", "pit", "gpt1", "gpt2"}

func (i Interrupt) String() string {
	if i >= NumInterrupts {
		return "invalid"
	}
	return interruptNames[i]
}

// Handler services one interrupt.
type Handler func()

// Vectors is the board interrupt indirection table. An entry with no
// handler goes to the default handler, which only counts the interrupt.
type Vectors struct {
	mu       sync.Mutex
	source   [NumInterrupts]periph.ID
	handlers [NumInterrupts]Handler
	missed   [NumInterrupts]uint32
}

func newVectors(source [NumInterrupts]periph.ID) *Vectors {
	return &Vectors{source: source}
}

// mustValid panics on an interrupt outside the table. Every Vectors method
// takes this path.
func mustValid(i Interrupt) {
	if i >= NumInterrupts {
		panic("board: invalid interrupt")
	}
}

// Patch installs h for i and returns the handler it replaced, nil meaning
// the default. A nil h restores the default.
func (v *Vectors) Patch(i Interrupt, h Handler) Handler {
	mustValid(i)
	v.mu.Lock()
	defer v.mu.Unlock()
	prev := v.handlers[i]
	v.handlers[i] = h
	return prev
}

// Dispatch runs the handler for i.
func (v *Vectors) Dispatch(i Interrupt) {
	mustValid(i)
	v.mu.Lock()
	h := v.handlers[i]
	if h == nil {
		v.missed[i]++
	}
	v.mu.Unlock()
	if h != nil {
		h()
	}
}

// Source returns the peripheral that raises i.
func (v *Vectors) Source(i Interrupt) periph.ID {
	mustValid(i)
	return v.source[i]
}

// Unhandled returns how many times i reached the default handler.
func (v *Vectors) Unhandled(i Interrupt) uint32 {
	mustValid(i)
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.missed[i]
}
