// Package clockinfo publishes the configured clock tree on the bus and logs
// a periodic heartbeat.
package clockinfo

import (
	"context"
	"time"

	"boardcode-go/bus"
	"boardcode-go/imxrt/clock"
	"boardcode-go/imxrt/runmode"
)

var (
	// TopicMode carries the run mode name, retained.
	TopicMode = bus.Topic{"board", "mode"}
	// TopicBeat carries the heartbeat count.
	TopicBeat = bus.Topic{"clockinfo", "beat"}
	// TopicInterval accepts a new heartbeat interval as a time.Duration.
	TopicInterval = bus.Topic{"config", "clockinfo", "interval"}
)

// TopicDomain carries a domain's frequency in Hz, retained.
func TopicDomain(domain string) bus.Topic { return bus.Topic{"clock", domain} }

const defaultInterval = time.Second

type Service struct {
	Mode     runmode.RunMode
	Interval time.Duration
}

func (s *Service) publishTree(conn *bus.Connection) {
	conn.Publish(&bus.Message{Topic: TopicMode, Payload: s.Mode.String(), Retained: true})
	for _, c := range clock.Ceilings(s.Mode) {
		conn.Publish(&bus.Message{Topic: TopicDomain(c.Domain), Payload: c.Hz, Retained: true})
	}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(TopicInterval)
	defer conn.Unsubscribe(cfgSub)

	interval := s.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()

	var beats uint32
	for {
		select {
		case <-ctx.Done():
			println("[clockinfo] stopping")
			return
		case t := <-tick.C:
			beats++
			println("[clockinfo]", t.Format("15:04:05"), "heartbeat", beats, "ahb", clock.AHBFrequency(s.Mode))
			conn.Publish(&bus.Message{Topic: TopicBeat, Payload: beats})
		case msg, ok := <-cfgSub.Channel():
			if !ok {
				println("[clockinfo] disconnected")
				return
			}
			if msg == nil {
				continue
			}
			if d, ok := msg.Payload.(time.Duration); ok && d > 0 {
				tick.Reset(d)
				println("[clockinfo] interval set to", d.String())
			}
		}
	}
}

// Start publishes the clock tree and runs the heartbeat until ctx is done or
// conn is disconnected.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	s.publishTree(conn)
	go s.serviceLoop(ctx, conn)
	return nil
}
