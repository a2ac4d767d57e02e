// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

func testConfiguration() Configuration {
	return Configuration{
		Workers:    1,
		Seed:       99,
		Operations: 0,
		KeySpace:   200,
		Audit:      0,
	}
}

func TestWorkerSteps(t *testing.T) {
	w := newWorker(0, testConfiguration())
	counts := counters{}

	for i := 0; i < 5000; i += 1 {
		op, err := w.step(&counts)
		if nil != err {
			t.Fatalf("%d: %s: error: %s", i, op, err)
		}
		if 0 == i%250 {
			assert.Nil(t, w.auditTree(), "audit at: %d", i)
		}
	}
	assert.False(t, w.tree.IsEmpty(), "tree emptied")
	assert.Equal(t, uint64(5000), counts.adds.Uint64()+counts.discards.Uint64()+counts.removes.Uint64()+counts.pops.Uint64(), "operation split")
}

func TestWorkerDetectsDivergence(t *testing.T) {
	w := newWorker(0, testConfiguration())

	w.tree.Add(avl.Int(7))
	assert.Equal(t, fault.ErrModelMismatch, w.verify(), "extra tree key")
	assert.Equal(t, fault.ErrModelMismatch, w.auditTree(), "audit extra tree key")

	w.model[avl.Int(7)] = struct{}{}
	assert.Nil(t, w.verify(), "agreeing model")

	w.model[avl.Int(8)] = struct{}{}
	assert.Equal(t, fault.ErrModelMismatch, w.verify(), "extra model key")
}

func TestNewWorkerEmptyKeySpace(t *testing.T) {
	config := testConfiguration()
	config.KeySpace = 0

	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		newWorker(0, config)
	}, "no panic")
}

// only the first failure is kept and every worker is told to stop
func TestFailKeepsFirstError(t *testing.T) {
	r, err := New(testConfiguration(), logger.New("test"))
	assert.Nil(t, err, "new error")

	r.fail(0, "add", fault.ErrModelMismatch)
	r.fail(1, "pop", fault.ErrTooTall)
	assert.Equal(t, fault.ErrModelMismatch, r.Err(), "wrong error kept")

	select {
	case <-r.abort:
	default:
		t.Error("abort not signalled")
	}
}

func TestWithinBound(t *testing.T) {
	items := []struct {
		n      int
		height int
		ok     bool
	}{
		{0, 0, true},
		{1, 1, true},
		{2, 2, true},
		{3, 4, false},
		{7, 4, true},
		{7, 5, false},
		{12, 5, true},
		{1000, 14, true},
		{1000, 15, false},
	}
	for _, item := range items {
		assert.Equal(t, item.ok, withinBound(item.n, item.height), "n: %d  height: %d", item.n, item.height)
	}
}

func TestQuota(t *testing.T) {
	c := Configuration{Workers: 3, Operations: 10}
	assert.Equal(t, int64(4), c.quota(0), "first worker")
	assert.Equal(t, int64(3), c.quota(1), "second worker")
	assert.Equal(t, int64(3), c.quota(2), "third worker")

	c.Operations = 0
	assert.Equal(t, int64(-1), c.quota(0), "unlimited")
}
