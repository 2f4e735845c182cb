// Package periph tracks ownership of the on-chip peripheral instances.
package periph

import (
	"sync"

	"boardcode-go/errcode"
	"boardcode-go/imxrt/ccm"
	"boardcode-go/imxrt/ral"
)

// ID names one peripheral instance.
type ID uint8

const (
	DMA ID = iota
	PIT
	GPT1
	GPT2
	GPIO1
	GPIO2
	LPUART1
	LPUART2
	LPUART3
	LPUART4
	LPSPI1
	LPSPI2
	LPI2C1
	LPI2C2
	numIDs
)

type desc struct {
	name  string
	base  ral.Register
	gates []ccm.Locator
}

var table = [numIDs]desc{
	DMA:     {"dma", ral.DMA0Base, []ccm.Locator{ccm.GateDMA}},
	PIT:     {"pit", ral.PITBase, []ccm.Locator{ccm.GatePIT}},
	GPT1:    {"gpt1", ral.GPT1Base, []ccm.Locator{ccm.GateGPT1Bus, ccm.GateGPT1Serial}},
	GPT2:    {"gpt2", ral.GPT2Base, []ccm.Locator{ccm.GateGPT2Bus, ccm.GateGPT2Serial}},
	GPIO1:   {"gpio1", ral.GPIO1Base, []ccm.Locator{ccm.GateGPIO1}},
	GPIO2:   {"gpio2", ral.GPIO2Base, []ccm.Locator{ccm.GateGPIO2}},
	LPUART1: {"lpuart1", ral.LPUART1Base, []ccm.Locator{ccm.GateLPUART1}},
	LPUART2: {"lpuart2", ral.LPUART2Base, []ccm.Locator{ccm.GateLPUART2}},
	LPUART3: {"lpuart3", ral.LPUART3Base, []ccm.Locator{ccm.GateLPUART3}},
	LPUART4: {"lpuart4", ral.LPUART4Base, []ccm.Locator{ccm.GateLPUART4}},
	LPSPI1:  {"lpspi1", ral.LPSPI1Base, []ccm.Locator{ccm.GateLPSPI1}},
	LPSPI2:  {"lpspi2", ral.LPSPI2Base, []ccm.Locator{ccm.GateLPSPI2}},
	LPI2C1:  {"lpi2c1", ral.LPI2C1Base, []ccm.Locator{ccm.GateLPI2C1}},
	LPI2C2:  {"lpi2c2", ral.LPI2C2Base, []ccm.Locator{ccm.GateLPI2C2}},
}

func (id ID) Valid() bool { return id < numIDs }

func (id ID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return table[id].name
}

// Base returns the first register of the instance.
func (id ID) Base() ral.Register { return table[id].base }

// Gates returns the clock gates the instance needs.
func (id ID) Gates() []ccm.Locator { return table[id].gates }

// noCopy trips `go vet -copylocks` when an Instance is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Instance is exclusive access to one peripheral. Only a Registry makes them;
// pass them by pointer.
type Instance struct {
	_     noCopy
	id    ID
	owner string
}

func (in *Instance) ID() ID             { return in.id }
func (in *Instance) Owner() string      { return in.owner }
func (in *Instance) Base() ral.Register { return in.id.Base() }

// Clocked reports whether every gate of the instance is on.
func (in *Instance) Clocked(f ral.File) bool {
	for _, l := range in.id.Gates() {
		if !ccm.IsOn(f, l) {
			return false
		}
	}
	return true
}

// Registry hands out at most one Instance per ID.
type Registry struct {
	mu     sync.Mutex
	owners [numIDs]string
}

// NewRegistry returns a registry with nothing claimed.
func NewRegistry() *Registry { return &Registry{} }

// Claim takes id for owner.
func (r *Registry) Claim(owner string, id ID) (*Instance, error) {
	if !id.Valid() {
		return nil, errcode.UnknownPeripheral
	}
	if owner == "" {
		return nil, errcode.InvalidParams
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur := r.owners[id]; cur != "" {
		return nil, &errcode.E{C: errcode.PeripheralInUse, Op: "periph.Claim", Msg: id.String() + " held by " + cur}
	}
	r.owners[id] = owner
	return &Instance{id: id, owner: owner}, nil
}

// Release gives the instance back. Releasing twice, or releasing an
// instance the registry no longer attributes to its owner, does nothing.
func (r *Registry) Release(in *Instance) {
	if in == nil || !in.id.Valid() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owners[in.id] == in.owner {
		r.owners[in.id] = ""
	}
	in.owner = ""
}

// Owner reports who holds id, or "" if it is free.
func (r *Registry) Owner(id ID) string {
	if !id.Valid() {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owners[id]
}
