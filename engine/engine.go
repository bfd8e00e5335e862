// Package engine runs the render loop: the single goroutine that owns all
// fixture state and the universe buffer, drains the control queue, renders every
// patched fixture and transmits the frame at a fixed cadence.
package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robmorgan/helios/control"
	"github.com/robmorgan/helios/dmx"
	"github.com/robmorgan/helios/fixture"
	"github.com/robmorgan/helios/logger"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// State is the render loop lifecycle.
type State int32

const (
	Starting State = iota
	Running
	Draining
	Stopped
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Draining:
		return "draining"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Command is a lifecycle command delivered on the command channel.
type Command int

// CommandShutdown asks the loop to finish the in-flight tick, transmit one
// final safe frame and stop.
const CommandShutdown Command = iota

// Options tune the render loop. The zero value gets sensible defaults.
type Options struct {
	// Period is the render cadence. Default 40ms (25 Hz, the practical DMX
	// refresh limit).
	Period time.Duration

	// QueueSize bounds the control queue. Producers drop rather than block
	// when it fills. Default 64.
	QueueSize int

	// TxFailureLimit is how many consecutive transmit failures the loop
	// tolerates before draining. Default 25 (about a second at 25 Hz).
	TxFailureLimit int

	// SafeStateOnExit resets every fixture to rest before the final frame, so
	// the rig stops moving when the process exits. Default true.
	SafeStateOnExit *bool

	// Clock is injectable for tests. Default the real clock.
	Clock clock.WithTicker
}

type renderTarget struct {
	fix  fixture.Fixture
	base int
	buf  []byte
}

// Engine is the render loop plus the three channels that cross its boundary.
// Construct with New, start with Run, feed with Submit, stop with Shutdown.
type Engine struct {
	log   *logrus.Logger
	opts  Options
	table *control.Table

	universe *dmx.Universe
	tx       dmx.Transmitter
	targets  []renderTarget

	controlC chan control.Event
	commandC chan Command
	diagC    chan Snapshot

	state      int32
	dropped    uint64
	txFailures int
	frame      uint64
	lastTxErr  string
}

// New validates the patch and builds an engine around it. The dispatch table
// must already contain every control the surface can reach.
func New(patches []fixture.Patch, table *control.Table, tx dmx.Transmitter, opts Options) (*Engine, error) {
	if opts.Period <= 0 {
		opts.Period = 40 * time.Millisecond
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.TxFailureLimit <= 0 {
		opts.TxFailureLimit = 25
	}
	if opts.SafeStateOnExit == nil {
		safe := true
		opts.SafeStateOnExit = &safe
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if table == nil {
		return nil, fmt.Errorf("nil dispatch table")
	}
	if tx == nil {
		return nil, fmt.Errorf("nil transmitter")
	}
	if err := fixture.ValidatePatches(patches, dmx.UniverseSize); err != nil {
		return nil, err
	}

	universe := dmx.NewUniverse()
	targets := make([]renderTarget, 0, len(patches))
	for _, p := range patches {
		buf, err := universe.Slice(p.Base, p.Fixture.ChannelCount())
		if err != nil {
			return nil, err
		}
		targets = append(targets, renderTarget{fix: p.Fixture, base: p.Base, buf: buf})
	}

	return &Engine{
		log:      logger.GetProjectLogger(),
		opts:     opts,
		table:    table,
		universe: universe,
		tx:       tx,
		targets:  targets,
		controlC: make(chan control.Event, opts.QueueSize),
		commandC: make(chan Command, 1),
		diagC:    make(chan Snapshot, 1),
	}, nil
}

// State reports the loop's lifecycle state. Safe from any goroutine.
func (e *Engine) State() State {
	return State(atomic.LoadInt32(&e.state))
}

func (e *Engine) setState(s State) {
	atomic.StoreInt32(&e.state, int32(s))
}

// Submit pushes one control event onto the queue without ever blocking the
// caller. When the queue is full the event is dropped and counted — surface
// responsiveness beats lossless delivery, and the next surface tick supersedes
// a dropped one anyway.
func (e *Engine) Submit(ev control.Event) {
	select {
	case e.controlC <- ev:
	default:
		n := atomic.AddUint64(&e.dropped, 1)
		e.log.Warnf("control queue full, dropped %v (%d dropped total)", ev.ID, n)
	}
}

// Dropped is the number of control events dropped on queue overflow.
func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

// Shutdown asks the loop to drain. Idempotent: repeated calls, or calls after
// the loop stopped, are no-ops.
func (e *Engine) Shutdown() {
	select {
	case e.commandC <- CommandShutdown:
	default:
	}
}

// Diagnostics exposes the snapshot stream. Slow consumers lose frames, never
// stall the loop.
func (e *Engine) Diagnostics() <-chan Snapshot {
	return e.diagC
}

// Run executes the loop until shutdown or context cancellation, then performs
// the final transmission and releases the transmitter. Call it exactly once.
func (e *Engine) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&e.state, int32(Starting), int32(Running)) {
		return fmt.Errorf("render loop already started (state %v)", e.State())
	}
	defer close(e.diagC)

	for _, t := range e.targets {
		t.fix.Reset()
	}
	e.log.Infof("render loop running: %d fixtures, %v period", len(e.targets), e.opts.Period)

	ticker := e.opts.Clock.NewTicker(e.opts.Period)
	defer ticker.Stop()
	lastTick := e.opts.Clock.Now()

	for e.State() == Running {
		select {
		case <-ctx.Done():
			e.beginDrain("context canceled")
		case cmd, ok := <-e.commandC:
			if !ok || cmd == CommandShutdown {
				e.beginDrain("shutdown command")
			}
		case now := <-ticker.C():
			delta := now.Sub(lastTick)
			lastTick = now
			e.tick(delta)
		}
	}

	// Draining: one final frame, at rest if configured, then stop.
	if *e.opts.SafeStateOnExit {
		for _, t := range e.targets {
			t.fix.Reset()
		}
	}
	e.renderAll()
	if err := e.tx.Transmit(e.universe.Bytes()); err != nil {
		e.log.Errorf("final frame transmit failed: %v", err)
	}
	e.setState(Stopped)
	e.log.Info("render loop stopped")
	return e.tx.Close()
}

func (e *Engine) beginDrain(reason string) {
	if e.State() == Running {
		e.log.Infof("render loop draining: %s", reason)
		e.setState(Draining)
	}
}

// tick is one full render cycle: drain controls, advance ramps, render, send.
func (e *Engine) tick(delta time.Duration) {
	e.drainControls()

	for _, t := range e.targets {
		t.fix.Update(delta)
	}
	e.renderAll()

	if err := e.tx.Transmit(e.universe.Bytes()); err != nil {
		e.txFailures++
		e.lastTxErr = err.Error()
		e.log.Warnf("transmit failed (%d consecutive): %v", e.txFailures, err)
		if e.txFailures >= e.opts.TxFailureLimit {
			e.log.Errorf("transport failed %d times in a row, giving up", e.txFailures)
			e.beginDrain("transport failure limit reached")
		}
	} else {
		e.txFailures = 0
		e.lastTxErr = ""
	}

	e.frame++
	e.publishSnapshot(delta)
}

// drainControls applies every event already queued. Per-event errors are logged
// and dropped; one bad update never stops the rest of the tick.
func (e *Engine) drainControls() {
	for {
		select {
		case ev, ok := <-e.controlC:
			if !ok {
				e.beginDrain("control queue closed")
				return
			}
			if err := e.table.Dispatch(ev); err != nil {
				e.log.Errorf("dropping control event: %v", err)
			}
		default:
			return
		}
	}
}

func (e *Engine) renderAll() {
	for _, t := range e.targets {
		t.fix.Render(t.buf)
	}
}

func (e *Engine) publishSnapshot(delta time.Duration) {
	snap := Snapshot{
		Frame:   e.frame,
		State:   e.State().String(),
		Dropped: atomic.LoadUint64(&e.dropped),
		TxError: e.lastTxErr,
	}
	if delta > 0 {
		snap.FPS = float64(time.Second) / float64(delta)
	}
	for _, t := range e.targets {
		ff := FixtureFrame{
			Name:     t.fix.Name(),
			Base:     t.base,
			Channels: e.universe.Window(t.base, t.fix.ChannelCount()),
		}
		if s, ok := t.fix.(fixture.Summarizer); ok {
			ff.Summary = s.Summary()
		}
		snap.Fixtures = append(snap.Fixtures, ff)
	}
	select {
	case e.diagC <- snap:
	default:
		// monitor is behind; this frame is already stale
	}
}
