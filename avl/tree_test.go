// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

func ints(values ...int) []interface{} {
	result := make([]interface{}, len(values))
	for i, v := range values {
		result[i] = avl.Int(v)
	}
	return result
}

type record struct {
	name  string
	score int
}

// order records by score
func byScore(value interface{}) avl.Item {
	r, ok := value.(record)
	if !ok {
		return nil
	}
	return avl.Int(r.score)
}

func TestFromSliceEmpty(t *testing.T) {
	tree := avl.FromSlice(nil, nil)

	assert.Equal(t, 0, tree.Len(), "wrong length")
	assert.True(t, tree.IsEmpty(), "not empty")
	_, err := tree.Min()
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong error")
}

func TestFromSliceBalanced(t *testing.T) {
	tree := avl.FromSlice(ints(5, 3, 8, 1, 4, 7, 9), nil)

	assert.Equal(t, ints(1, 3, 4, 5, 7, 8, 9), tree.Values(), "wrong order")
	assert.Equal(t, 3, tree.Height(), "wrong height")
	assert.Equal(t, 7, tree.Len(), "wrong length")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

func TestFromSliceDuplicates(t *testing.T) {
	tree := avl.Of(avl.Int(3), avl.Int(1), avl.Int(3), avl.Int(2), avl.Int(1))

	assert.Equal(t, ints(1, 2, 3), tree.Values(), "wrong values")
	assert.Equal(t, 3, tree.Len(), "wrong length")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

// the latest value in the input wins for a repeated key
func TestFromSliceLastValueWins(t *testing.T) {
	values := []interface{}{
		record{"alice", 3},
		record{"bob", 1},
		record{"carol", 3},
		record{"dave", 2},
		record{"erin", 1},
	}
	tree := avl.FromSlice(values, byScore)

	assert.Equal(t, []interface{}{
		record{"erin", 1},
		record{"dave", 2},
		record{"carol", 3},
	}, tree.Values(), "wrong survivors")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

func TestSequentialInsertRebalances(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 7; i += 1 {
		assert.True(t, tree.Add(avl.Int(i)), "add failed")
		mustCheck(t, tree, "add")
	}
	assert.Equal(t, 3, tree.Height(), "degenerate tree")
	assert.Equal(t, ints(1, 2, 3, 4, 5, 6, 7), tree.Values(), "wrong order")
}

func TestDiscardMiddle(t *testing.T) {
	tree := avl.FromSlice(ints(1, 2, 3, 4, 5), nil)

	assert.True(t, tree.Discard(avl.Int(3)), "not discarded")
	assert.Equal(t, ints(1, 2, 4, 5), tree.Values(), "wrong values")
	assert.True(t, tree.Height() <= 3, "too tall")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

func TestDiscardMissing(t *testing.T) {
	tree := avl.FromSlice(ints(1, 2, 3), nil)

	assert.False(t, tree.Discard(avl.Int(4)), "discarded a missing value")
	assert.Equal(t, fault.ErrKeyNotFound, tree.Remove(avl.Int(4)), "wrong error")
	assert.Equal(t, 3, tree.Len(), "length changed")
}

func TestPopMaxSequence(t *testing.T) {
	tree := avl.FromSlice(ints(1, 2, 3), nil)

	for _, expected := range ints(3, 2, 1) {
		v, err := tree.PopMax()
		assert.Nil(t, err, "unexpected error")
		assert.Equal(t, expected, v, "wrong value")
		assert.Nil(t, tree.Check(), "inconsistent tree")
	}
	_, err := tree.PopMax()
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong error")
}

func TestPopReturnsFirst(t *testing.T) {
	tree := avl.FromSlice(ints(9, 4, 6), nil)

	v, err := tree.Pop()
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, avl.Int(4), v, "wrong value")
	assert.Equal(t, ints(6, 9), tree.Values(), "wrong remainder")
}

func TestAddIsIdempotent(t *testing.T) {
	tree := avl.FromSlice(ints(1, 5, 9), nil)

	assert.True(t, tree.Add(avl.Int(4)), "first add")
	before := tree.Values()
	assert.False(t, tree.Add(avl.Int(4)), "second add")
	assert.Equal(t, before, tree.Values(), "tree changed")
	assert.Equal(t, 4, tree.Len(), "wrong length")
}

func TestAddThenDiscard(t *testing.T) {
	tree := avl.FromSlice(ints(1, 5, 9), nil)
	n := tree.Len()

	tree.Add(avl.Int(7))
	tree.Discard(avl.Int(7))
	assert.False(t, tree.Contains(avl.Int(7)), "still present")
	assert.Equal(t, n, tree.Len(), "wrong length")
}

func TestKeyFunction(t *testing.T) {
	tree := avl.NewWithKey(byScore)
	tree.Add(record{"alice", 30})
	tree.Add(record{"bob", 10})
	tree.Add(record{"carol", 20})

	assert.False(t, tree.Add(record{"dave", 20}), "equal key added")
	assert.True(t, tree.Contains(record{"anyone", 20}), "key lookup failed")

	v, ok := tree.Get(record{"", 20})
	assert.True(t, ok, "get failed")
	assert.Equal(t, record{"carol", 20}, v, "wrong stored value")

	min, err := tree.Min()
	assert.Nil(t, err, "min error")
	assert.Equal(t, record{"bob", 10}, min, "wrong min")

	max, err := tree.Max()
	assert.Nil(t, err, "max error")
	assert.Equal(t, record{"alice", 30}, max, "wrong max")

	assert.False(t, tree.Contains("not a record"), "foreign value contained")
	assert.False(t, tree.Discard("not a record"), "foreign value discarded")
	assert.NotNil(t, tree.Key(), "key function missing")
}

func TestAddUnkeyablePanics(t *testing.T) {
	tree := avl.New()

	assert.PanicsWithValue(t, fault.ErrTypeMismatch, func() {
		tree.Add("plain string is not an Item")
	}, "no panic")
	assert.True(t, tree.IsEmpty(), "tree modified")
}

func TestIteratorsAreIndependent(t *testing.T) {
	tree := avl.FromSlice(ints(1, 2, 3), nil)

	a := tree.Iterate()
	b := tree.Iterate()
	assert.True(t, a.Next(), "a first")
	assert.True(t, a.Next(), "a second")
	assert.True(t, b.Next(), "b first")
	assert.Equal(t, avl.Int(2), a.Value(), "a position")
	assert.Equal(t, avl.Int(1), b.Value(), "b position")
	assert.True(t, a.Next(), "a third")
	assert.False(t, a.Next(), "a exhausted")
	assert.Nil(t, a.Value(), "value after exhaustion")
}

func TestStockItems(t *testing.T) {
	strs := avl.Of(avl.String("pear"), avl.String("apple"), avl.String("fig"))
	assert.Equal(t, []interface{}{avl.String("apple"), avl.String("fig"), avl.String("pear")}, strs.Values(), "strings")

	floats := avl.Of(avl.Float(2.5), avl.Float(-1), avl.Float(0.25))
	assert.Equal(t, []interface{}{avl.Float(-1), avl.Float(0.25), avl.Float(2.5)}, floats.Values(), "floats")

	raw := avl.Of(avl.Bytes{0x02}, avl.Bytes{0x01, 0xff}, avl.Bytes{0x01})
	assert.Equal(t, 3, raw.Len(), "bytes")
	min, _ := raw.Min()
	assert.Equal(t, avl.Bytes{0x01}, min, "bytes min")
}

func TestPrint(t *testing.T) {
	tree := avl.FromSlice(ints(1, 2, 3), nil)

	var b strings.Builder
	depth := tree.Print(&b, false)
	assert.Equal(t, 2, depth, "wrong depth")
	assert.Equal(t, 3, strings.Count(b.String(), "\n"), "wrong line count")
	assert.Contains(t, b.String(), "|------+ 2", "missing root")
}

// random operation sequences against a map model
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := avl.New()
	model := make(map[avl.Int]struct{})

	for i := 0; i < 20000; i += 1 {
		k := avl.Int(r.Intn(500))
		switch r.Intn(4) {
		case 0, 1:
			_, present := model[k]
			assert.Equal(t, !present, tree.Add(k), "add result")
			model[k] = struct{}{}
		case 2:
			_, present := model[k]
			assert.Equal(t, present, tree.Discard(k), "discard result")
			delete(model, k)
		case 3:
			var v interface{}
			var err error
			if 0 == r.Intn(2) {
				v, err = tree.PopMin()
			} else {
				v, err = tree.PopMax()
			}
			if 0 == len(model) {
				assert.Equal(t, fault.ErrEmptyTree, err, "pop empty")
				continue
			}
			assert.Nil(t, err, "pop error")
			delete(model, v.(avl.Int))
		}
		if 0 == i%97 {
			mustCheck(t, tree, "random")
		}
		if len(model) != tree.Len() {
			t.Fatalf("%d: length: actual: %d  expected: %d", i, tree.Len(), len(model))
		}
	}
	mustCheck(t, tree, "final")
}

// AVL height bound: h <= 1.44 log2(n+2) - 0.33
func TestHeightBound(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := avl.New()
	for tree.Len() < 10000 {
		tree.Add(avl.Int(r.Int()))
		bound := 1.44*math.Log2(float64(tree.Len()+2)) - 0.33
		if float64(tree.Height()) > bound {
			t.Fatalf("n: %d  height: %d exceeds: %f", tree.Len(), tree.Height(), bound)
		}
	}
	mustCheck(t, tree, "bound")
}

// round trip of distinct values through a bulk load
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for size := 0; size < 200; size += 7 {
		values := make([]interface{}, 0, size)
		seen := make(map[int]bool)
		for len(values) < size {
			v := r.Intn(1000)
			if seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, avl.Int(v))
		}
		tree := avl.FromSlice(values, nil)
		assert.Equal(t, size, tree.Len(), "wrong size")
		for _, v := range values {
			assert.True(t, tree.Contains(v), "missing value")
		}
		assert.Nil(t, tree.Check(), "inconsistent tree")
	}
}

// NaN orders below every number so it cannot swallow other keys
func TestFloatNaN(t *testing.T) {
	nan := avl.Float(math.NaN())
	tree := avl.Of(avl.Float(1), nan, avl.Float(2))

	assert.Equal(t, 3, tree.Len(), "wrong length")
	assert.Nil(t, tree.Check(), "inconsistent tree")

	min, err := tree.Min()
	assert.Nil(t, err, "min error")
	assert.True(t, math.IsNaN(float64(min.(avl.Float))), "NaN is not the minimum")

	assert.True(t, tree.Add(avl.Float(5)), "add under NaN")
	assert.False(t, tree.Add(avl.Float(math.NaN())), "second NaN added")
	assert.False(t, tree.Contains(avl.Float(7)), "missing value contained")
	assert.True(t, tree.Contains(nan), "NaN not found")

	assert.True(t, tree.Discard(nan), "NaN not discarded")
	assert.Equal(t, []interface{}{avl.Float(1), avl.Float(2), avl.Float(5)}, tree.Values(), "wrong values")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

// a key of another type is never handed to Compare
func TestMixedKeyTypes(t *testing.T) {
	tree := avl.Of(avl.Int(1), avl.Int(2))

	assert.False(t, tree.Contains(avl.String("x")), "contains")
	v, ok := tree.Get(avl.String("x"))
	assert.False(t, ok, "get")
	assert.Nil(t, v, "get value")
	assert.False(t, tree.Discard(avl.String("x")), "discard")
	assert.Equal(t, fault.ErrKeyNotFound, tree.Remove(avl.String("x")), "remove")

	assert.PanicsWithValue(t, fault.ErrTypeMismatch, func() {
		tree.Add(avl.String("x"))
	}, "add")
	assert.Equal(t, ints(1, 2), tree.Values(), "tree modified")

	assert.PanicsWithValue(t, fault.ErrTypeMismatch, func() {
		avl.Of(avl.Int(1), avl.String("x"))
	}, "bulk load")
}
