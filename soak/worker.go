// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"math"
	"math/rand"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// operation selectors, additions weighted so that a tree settles at
// about half of the key space
const (
	opAdd     = 6
	opDiscard = opAdd
	opRemove  = opDiscard + 1
	opPopMin  = opRemove + 1
	opPopMax  = opPopMin + 1
	opCount   = opPopMax + 1
)

type worker struct {
	n        int
	rng      *rand.Rand
	tree     *avl.Tree
	model    map[avl.Int]struct{}
	quota    int64 // -1 => unlimited
	done     int64
	keySpace int
	audit    int
}

func newWorker(n int, config Configuration) *worker {
	if config.KeySpace <= 0 {
		fault.Panicf("worker[%d]: key space: %d is not positive", n, config.KeySpace)
	}
	return &worker{
		n:        n,
		rng:      rand.New(rand.NewSource(config.Seed + int64(n))),
		tree:     avl.New(),
		model:    make(map[avl.Int]struct{}),
		quota:    config.quota(n),
		done:     0,
		keySpace: config.KeySpace,
		audit:    config.Audit,
	}
}

// Run - background process applying operations until the quota is
// used, a check fails or shutdown
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {

	r := args.(*Runner)
	r.log.Infof("worker[%d]: starting", w.n)

loop:
	for w.quota < 0 || w.done < w.quota {
		select {
		case <-shutdown:
			break loop
		case <-r.abort:
			break loop
		default:
		}

		ok, err := rateLimit(r.limiter, shutdown)
		if nil != err {
			r.fail(w.n, "rate limit", err)
			break loop
		}
		if !ok {
			break loop
		}

		op, err := w.step(&r.counts)
		if nil != err {
			r.fail(w.n, op, err)
			r.log.Debugf("worker[%d]: final tree:\n%s", w.n, dumpTree(w.tree))
			break loop
		}
		w.done += 1
		r.counts.operations.Increment()

		if w.audit > 0 && 0 == w.done%int64(w.audit) {
			if err := w.auditTree(); nil != err {
				r.fail(w.n, "audit", err)
				break loop
			}
			r.counts.audits.Increment()
		}
	}

	r.log.Infof("worker[%d]: stopped after: %d operations  size: %d  height: %d", w.n, w.done, w.tree.Len(), w.tree.Height())
}

// apply one random operation to the tree and the model then verify
// them; returns the operation name for reporting
func (w *worker) step(counts *counters) (string, error) {

	k := avl.Int(w.rng.Intn(w.keySpace))
	_, present := w.model[k]

	if w.tree.Contains(k) != present {
		return "contains", fault.ErrModelMismatch
	}

	var name string
	switch op := w.rng.Intn(opCount); {
	case op < opAdd:
		name = "add"
		if w.tree.Add(k) == present {
			return name, fault.ErrModelMismatch
		}
		w.model[k] = struct{}{}
		counts.adds.Increment()

	case op == opDiscard:
		name = "discard"
		if w.tree.Discard(k) != present {
			return name, fault.ErrModelMismatch
		}
		delete(w.model, k)
		counts.discards.Increment()

	case op == opRemove:
		name = "remove"
		err := w.tree.Remove(k)
		if present && nil != err {
			return name, err
		}
		if !present && fault.ErrKeyNotFound != err {
			return name, fault.ErrModelMismatch
		}
		delete(w.model, k)
		counts.removes.Increment()

	case op == opPopMin:
		name = "pop min"
		pop := w.tree.PopMin
		if 0 == w.rng.Intn(2) {
			name = "pop"
			pop = w.tree.Pop
		}
		if err := w.pop(pop, false); nil != err {
			return name, err
		}
		counts.pops.Increment()

	default:
		name = "pop max"
		if err := w.pop(w.tree.PopMax, true); nil != err {
			return name, err
		}
		counts.pops.Increment()
	}

	return name, w.verify()
}

// pop from one end and confirm the value was the extreme one
func (w *worker) pop(pop func() (interface{}, error), fromMax bool) error {

	v, err := pop()
	if 0 == len(w.model) {
		if fault.ErrEmptyTree != err {
			return fault.ErrModelMismatch
		}
		return nil
	}
	if nil != err {
		return err
	}

	k, ok := v.(avl.Int)
	if !ok {
		return fault.ErrModelMismatch
	}
	if _, ok := w.model[k]; !ok {
		return fault.ErrModelMismatch
	}
	delete(w.model, k)

	if w.tree.IsEmpty() {
		return nil
	}

	// every remaining key must lie beyond the popped one
	if fromMax {
		max, _ := w.tree.Max()
		if max.(avl.Int) >= k {
			return fault.ErrBrokenOrder
		}
	} else {
		min, _ := w.tree.Min()
		if min.(avl.Int) <= k {
			return fault.ErrBrokenOrder
		}
	}
	return nil
}

// structure, height bound and size
func (w *worker) verify() error {

	if err := w.tree.Check(); nil != err {
		return err
	}
	if !withinBound(w.tree.Len(), w.tree.Height()) {
		return fault.ErrTooTall
	}
	if w.tree.Len() != len(w.model) {
		return fault.ErrModelMismatch
	}
	return nil
}

// AVL height bound: h <= 1.44 log2(n+2) - 0.33
func withinBound(n int, h int) bool {
	return float64(h) <= 1.44*math.Log2(float64(n+2))-0.33
}

// compare the tree with a bulk built copy and with a random other set
func (w *worker) auditTree() error {

	values := w.tree.Values()
	if len(values) != len(w.model) {
		return fault.ErrModelMismatch
	}
	for _, v := range values {
		if _, ok := w.model[v.(avl.Int)]; !ok {
			return fault.ErrModelMismatch
		}
	}

	rebuilt := avl.FromSlice(values, nil)
	if err := rebuilt.Check(); nil != err {
		return err
	}
	if !rebuilt.Equal(w.tree) || !w.tree.Equal(rebuilt) {
		return fault.ErrModelMismatch
	}
	xor, err := w.tree.SymmetricDifference(rebuilt)
	if nil != err {
		return err
	}
	if !xor.IsEmpty() {
		return fault.ErrModelMismatch
	}

	// random second operand
	other := avl.New()
	otherSize := w.rng.Intn(w.keySpace/4 + 1)
	for i := 0; i < otherSize; i += 1 {
		other.Add(avl.Int(w.rng.Intn(w.keySpace)))
	}

	common := 0
	for it := other.Iterate(); it.Next(); {
		if _, ok := w.model[it.Value().(avl.Int)]; ok {
			common += 1
		}
	}

	union, err := w.tree.Union(other)
	if nil != err {
		return err
	}
	intersection := w.tree.Intersection(other)
	difference := w.tree.Difference(other)
	symmetric, err := w.tree.SymmetricDifference(other)
	if nil != err {
		return err
	}

	expected := []struct {
		tree *avl.Tree
		size int
	}{
		{union, len(w.model) + other.Len() - common},
		{intersection, common},
		{difference, len(w.model) - common},
		{symmetric, len(w.model) + other.Len() - 2*common},
	}
	for _, e := range expected {
		if err := e.tree.Check(); nil != err {
			return err
		}
		if e.tree.Len() != e.size {
			return fault.ErrModelMismatch
		}
	}

	if !intersection.IsSubset(w.tree) || !union.IsSuperset(w.tree) {
		return fault.ErrModelMismatch
	}
	if !difference.IsDisjoint(other) {
		return fault.ErrModelMismatch
	}
	return nil
}
