// Package driver provides run-loop support for the cmd benchmark
// drivers: a progress reporter that amortizes clock reads across loop
// iterations, and an interrupt flag the loops can poll instead of
// blocking on a signal channel.
//
// The benchmark subjects themselves never touch this package; it exists
// so a long driver run can print progress and stop cleanly on Ctrl-C
// without adding measurable overhead to the timed loops.
package driver

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"
)

// Progress reports at most once per interval, checking the clock only
// every N calls so the check itself stays off the profile.
type Progress struct {
	interval time.Duration
	every    int
	count    int
	last     time.Time
}

// NewProgress creates a Progress that fires no more than once per
// interval, reading the clock every N calls to Tick.
func NewProgress(interval time.Duration, every int) *Progress {
	if every < 1 {
		every = 1
	}
	return &Progress{
		interval: interval,
		every:    every,
		last:     time.Now(),
	}
}

// Tick returns true if a progress report is due. Cheap on the every-1
// calls where the clock is not consulted.
func (p *Progress) Tick() bool {
	p.count++
	if p.count%p.every != 0 {
		return false
	}
	now := time.Now()
	if now.Sub(p.last) >= p.interval {
		p.last = now
		return true
	}
	return false
}

// Interrupt is a pollable stop flag. A single atomic load per check, so
// driver loops can consult it every iteration.
type Interrupt struct {
	flag atomic.Bool
}

// NewInterrupt creates an Interrupt and arms it on SIGINT. The signal
// handler only sets the flag; the loop decides when to stop.
func NewInterrupt() *Interrupt {
	i := &Interrupt{}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		<-ch
		i.Stop()
		signal.Stop(ch)
	}()
	return i
}

var sharedInterrupt = sync.OnceValue(NewInterrupt)

// SharedInterrupt returns a process-wide Interrupt, armed on first use.
// Callers that run many suites in one process should use this instead
// of NewInterrupt so only one signal handler and goroutine exist.
func SharedInterrupt() *Interrupt {
	return sharedInterrupt()
}

// Stopped returns true once an interrupt has been requested.
func (i *Interrupt) Stopped() bool {
	return i.flag.Load()
}

// Stop requests a stop. Safe to call multiple times.
func (i *Interrupt) Stop() {
	i.flag.Store(true)
}
