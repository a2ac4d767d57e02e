// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/background"
	"github.com/bitmark-inc/avlset/counter"
	"github.com/bitmark-inc/avlset/fault"
)

type counters struct {
	operations counter.Counter
	adds       counter.Counter
	discards   counter.Counter
	removes    counter.Counter
	pops       counter.Counter
	audits     counter.Counter
}

// Stats - snapshot of the operation totals
type Stats struct {
	Operations uint64 `json:"operations"`
	Adds       uint64 `json:"adds"`
	Discards   uint64 `json:"discards"`
	Removes    uint64 `json:"removes"`
	Pops       uint64 `json:"pops"`
	Audits     uint64 `json:"audits"`
}

// Runner - a set of workers and an optional progress reporter
type Runner struct {
	config  Configuration
	log     *logger.L
	limiter *rate.Limiter
	counts  counters
	start   time.Time

	workers  *background.T
	reporter *background.T
	finished chan struct{}

	abort     chan struct{}
	abortOnce sync.Once

	errLock sync.Mutex
	err     error
}

// New - create a runner; nothing is started
func New(config Configuration, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if err := config.Validate(); nil != err {
		return nil, err
	}
	return &Runner{
		config:   config,
		log:      log,
		limiter:  newLimiter(config.Rate),
		finished: make(chan struct{}),
		abort:    make(chan struct{}),
	}, nil
}

// Start - launch the workers and the reporter
func (r *Runner) Start() {

	r.start = time.Now()
	r.log.Infof("start: %+v", r.config)

	processes := make(background.Processes, r.config.Workers)
	for i := range processes {
		processes[i] = newWorker(i, r.config)
	}
	r.workers = background.Start(processes, r)

	reporters := background.Processes{}
	if r.config.Report > 0 {
		reporters = append(reporters, &reporter{
			interval: time.Duration(r.config.Report) * time.Second,
		})
	}
	r.reporter = background.Start(reporters, r)

	go func() {
		r.workers.Done()
		close(r.finished)
	}()
}

// Finished - closed when every worker has returned
func (r *Runner) Finished() <-chan struct{} {
	return r.finished
}

// Stop - must follow Start; stop everything, wait and log the totals; returns the first
// failure if any
func (r *Runner) Stop() error {
	r.workers.Stop()
	<-r.finished
	r.reporter.Stop()

	stats := r.Stats()
	elapsed := time.Since(r.start)
	r.log.Infof("finished: %d operations in %s  adds: %d  discards: %d  removes: %d  pops: %d  audits: %d",
		stats.Operations, elapsed, stats.Adds, stats.Discards, stats.Removes, stats.Pops, stats.Audits)

	err := r.Err()
	if nil != err {
		r.log.Criticalf("failed: %s", err)
	}
	r.log.Flush()
	return err
}

// Wait - block until the workers finish their quotas then Stop
func (r *Runner) Wait() error {
	<-r.finished
	return r.Stop()
}

// Err - the first failure
func (r *Runner) Err() error {
	r.errLock.Lock()
	defer r.errLock.Unlock()
	return r.err
}

// Stats - current operation totals
func (r *Runner) Stats() Stats {
	return Stats{
		Operations: r.counts.operations.Uint64(),
		Adds:       r.counts.adds.Uint64(),
		Discards:   r.counts.discards.Uint64(),
		Removes:    r.counts.removes.Uint64(),
		Pops:       r.counts.pops.Uint64(),
		Audits:     r.counts.audits.Uint64(),
	}
}

// record the first failure and make every worker stop
func (r *Runner) fail(n int, op string, err error) {
	r.log.Errorf("worker[%d]: %s: error: %s", n, op, err)

	r.errLock.Lock()
	if nil == r.err {
		r.err = err
		fault.Criticalf("worker[%d]: first failure: %s: %s", n, op, err)
	}
	r.errLock.Unlock()

	r.abortOnce.Do(func() {
		close(r.abort)
	})
}

type reporter struct {
	interval time.Duration
}

func (rp *reporter) Run(args interface{}, shutdown <-chan struct{}) {

	r := args.(*Runner)
	ticker := time.NewTicker(rp.interval)
	defer ticker.Stop()

	previous := uint64(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := r.counts.operations.Uint64()
			perSecond := float64(n-previous) / rp.interval.Seconds()
			previous = n
			r.log.Infof("progress: %d operations  %.1f/s  audits: %d", n, perSecond, r.counts.audits.Uint64())
		}
	}
}

func dumpTree(tree *avl.Tree) string {
	var b strings.Builder
	tree.Print(&b, false)
	return b.String()
}
