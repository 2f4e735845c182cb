package main

import (
	"context"
	"time"

	"boardcode-go/board"
	"boardcode-go/bus"
	"boardcode-go/imxrt/clock"
	"boardcode-go/services/clockinfo"
)

func main() {
	b := board.New()
	println("[main] board", b.Descriptor.Name, "up")

	if _, err := b.Console.Write([]byte("boot\r\n")); err != nil {
		println("[main] console:", err.Error())
	}

	ctx := context.Background()
	msgs := bus.NewBus(8)

	info := &clockinfo.Service{Mode: b.Descriptor.RunMode, Interval: time.Second}
	if err := info.Start(ctx, msgs.NewConnection("clockinfo")); err != nil {
		println("[main] clockinfo:", err.Error())
	}

	for _, c := range clock.Ceilings(b.Descriptor.RunMode) {
		println("[main]", c.Domain, c.Hz, "Hz (max", c.MaxHz, ")")
	}

	select {}
}
