// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

func TestEmpty(t *testing.T) {
	tree := avl.New()

	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Count(), "wrong count")
	assert.Equal(t, 0, tree.Height(), "wrong height")
	assert.Nil(t, tree.Root(), "root present")
	assert.False(t, tree.Search(avl.IntKey(1)), "found key in empty tree")
	assert.Nil(t, tree.Check(), "empty tree inconsistent")

	buffer := &bytes.Buffer{}
	assert.Equal(t, 0, tree.Print(buffer), "wrong depth")
	assert.Equal(t, 0, buffer.Len(), "printed something")
}

func TestTenTwentyThirty(t *testing.T) {
	tree := avl.New()
	for _, k := range []avl.IntKey{10, 20, 30} {
		if !tree.Insert(k) {
			t.Fatalf("insert: %d not added", k)
		}
	}

	root := tree.Root()
	assertNode(t, root, 20, 2)
	assertNode(t, root.Left(), 10, 1)
	assertNode(t, root.Right(), 30, 1)

	assert.True(t, tree.Search(avl.IntKey(20)), "20 not found")
	assert.False(t, tree.Search(avl.IntKey(99)), "99 found")
	assert.Equal(t, 3, tree.Count(), "wrong count")
	assert.Nil(t, tree.Check(), "inconsistent tree")

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)
	assert.Equal(t, 2, depth, "wrong depth")
	expected := "       /------+ 30 h:1 +0\n" +
		"|------+ 20 h:2 +0\n" +
		"       \\------+ 10 h:1 +0\n"
	assert.Equal(t, expected, buffer.String(), "wrong drawing")
}

// each of the four cases ends with the middle key at the root
func TestRotationCases(t *testing.T) {
	cases := []struct {
		name string
		keys []avl.IntKey
	}{
		{"left-left", []avl.IntKey{30, 20, 10}},
		{"right-right", []avl.IntKey{10, 20, 30}},
		{"left-right", []avl.IntKey{30, 10, 20}},
		{"right-left", []avl.IntKey{10, 30, 20}},
	}

	for _, c := range cases {
		tree := avl.New()
		for _, k := range c.keys {
			tree.Insert(k)
		}
		root := tree.Root()
		if nil == root || 20 != root.Key().(avl.IntKey) {
			t.Fatalf("%s: wrong root: %v", c.name, root)
		}
		assertNode(t, root, 20, 2)
		assertNode(t, root.Left(), 10, 1)
		assertNode(t, root.Right(), 30, 1)
		if err := tree.Check(); nil != err {
			t.Fatalf("%s: check error: %s", c.name, err)
		}
	}
}

// a double rotation deeper in the tree must move the grandchild
// sub-trees to the correct side
func TestDoubleRotationWithSubtrees(t *testing.T) {
	tree := avl.New()
	for _, k := range []avl.IntKey{50, 20, 80, 10, 40, 30, 45} {
		tree.Insert(k)
	}

	// 30 lands under 40 making 50 left heavy with a right heavy left child
	root := tree.Root()
	assertNode(t, root, 40, 3)
	assertNode(t, root.Left(), 20, 2)
	assertNode(t, root.Left().Left(), 10, 1)
	assertNode(t, root.Left().Right(), 30, 1)
	assertNode(t, root.Right(), 50, 2)
	assertNode(t, root.Right().Left(), 45, 1)
	assertNode(t, root.Right().Right(), 80, 1)
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

// to make sure that lots of duplicates do not change the tree
func TestListDuplicates(t *testing.T) {
	addList := []avl.StringKey{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"1720", "0506", "8382", "6774", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []avl.StringKey{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
	}
	doList(t, addList)
}

// insert all items checking the tree after each step, then search
// for every item and some absent ones
func doList(t *testing.T, addList []avl.StringKey) {
	unique := make(map[avl.StringKey]struct{})
	tree := avl.New()

	for _, key := range addList {
		_, seen := unique[key]
		unique[key] = struct{}{}

		added := tree.Insert(key)
		if added == seen {
			t.Fatalf("insert: %q added: %v  previously seen: %v", key, added, seen)
		}
		if err := tree.Check(); nil != err {
			buffer := &bytes.Buffer{}
			tree.Print(buffer)
			t.Logf("tree:\n%s", buffer)
			t.Fatalf("after insert: %q  error: %s", key, err)
		}
	}

	if len(unique) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(unique), tree.Count())
	}

	for key := range unique {
		if !tree.Search(key) {
			t.Errorf("search: %q not found", key)
		}
	}
	for _, key := range []avl.StringKey{"", "00000", "x", "99999"} {
		if tree.Search(key) {
			t.Errorf("search: %q was found", key)
		}
	}

	checkHeightBound(t, tree)
}

func TestDuplicateInsertKeepsShape(t *testing.T) {
	tree := avl.New()
	keys := []avl.IntKey{8, 3, 12, 1, 5, 10, 14, 4, 6}
	for _, k := range keys {
		tree.Insert(k)
	}

	before := &bytes.Buffer{}
	tree.Print(before)
	height := tree.Height()
	count := tree.Count()

	for _, k := range keys {
		if tree.Insert(k) {
			t.Fatalf("duplicate: %d reported as added", k)
		}
	}

	after := &bytes.Buffer{}
	tree.Print(after)
	assert.Equal(t, before.String(), after.String(), "shape changed")
	assert.Equal(t, height, tree.Height(), "height changed")
	assert.Equal(t, count, tree.Count(), "count changed")
}

func TestAscendingAndDescending(t *testing.T) {
	const n = 1000

	ascending := avl.New()
	descending := avl.New()
	for i := 0; i < n; i += 1 {
		ascending.Insert(avl.IntKey(i))
		descending.Insert(avl.IntKey(n - i))
	}

	for _, tree := range []*avl.Tree{ascending, descending} {
		assert.Equal(t, n, tree.Count(), "wrong count")
		assert.Nil(t, tree.Check(), "inconsistent tree")
		checkHeightBound(t, tree)
	}

	// perfectly balanced after 2^k - 1 ascending keys
	tree := avl.New()
	for i := 1; i <= 127; i += 1 {
		tree.Insert(avl.IntKey(i))
	}
	assertNode(t, tree.Root(), 64, 7)
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 1, 2200)
	randomTree(t, 2, 3400)
	randomTree(t, 3, 5467)
}

func randomTree(t *testing.T, seed int64, total int) {
	r := rand.New(rand.NewSource(seed))

	tree := avl.New()
	inserted := make(map[int64]struct{})
	for i := 0; i < total; i += 1 {
		k := r.Int63n(10 * int64(total))
		inserted[k] = struct{}{}
		tree.Insert(avl.IntKey(k))
	}

	if err := tree.Check(); nil != err {
		t.Fatalf("seed: %d  inconsistent tree: %s", seed, err)
	}
	if len(inserted) != tree.Count() {
		t.Fatalf("seed: %d  count: %d  expected: %d", seed, tree.Count(), len(inserted))
	}
	checkHeightBound(t, tree)

	keys := make([]int64, 0, len(inserted))
	for k := range inserted {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for i, k := range keys {
		if !tree.Search(avl.IntKey(k)) {
			t.Fatalf("seed: %d  key: %d not found", seed, k)
		}
		// gaps between sorted keys can never be found
		if i > 0 && keys[i-1]+1 < k && tree.Search(avl.IntKey(k-1)) {
			t.Fatalf("seed: %d  absent key: %d found", seed, k-1)
		}
	}
	assert.False(t, tree.Search(avl.IntKey(-1)), "negative key found")
}

func TestStatistics(t *testing.T) {
	nodes, rotations := avl.Statistics()

	tree := avl.New()
	for _, k := range []avl.IntKey{10, 20, 30, 30, 20} {
		tree.Insert(k)
	}

	n, r := avl.Statistics()
	// totals are shared by every tree in the process so check a lower bound
	assert.True(t, n >= nodes+3, "node total: %d  before: %d", n, nodes)
	assert.True(t, r >= rotations+1, "rotation total: %d  before: %d", r, rotations)
}

func TestStringKeyOrder(t *testing.T) {
	assert.Equal(t, -1, avl.StringKey("a").Compare(avl.StringKey("b")), "a < b")
	assert.Equal(t, 0, avl.StringKey("b").Compare(avl.StringKey("b")), "b = b")
	assert.Equal(t, +1, avl.StringKey("b").Compare(avl.StringKey("a")), "b > a")
	assert.Equal(t, -1, avl.IntKey(-5).Compare(avl.IntKey(3)), "-5 < 3")
	assert.Equal(t, "-5", avl.IntKey(-5).String(), "int string")
}

func assertNode(t *testing.T, p *avl.Node, key avl.IntKey, height int) {
	t.Helper()
	if nil == p {
		t.Fatalf("missing node: %d", key)
	}
	if 0 != p.Key().Compare(key) {
		t.Fatalf("node key: %v  expected: %d", p.Key(), key)
	}
	if height != p.Height() {
		t.Fatalf("node: %d  height: %d  expected: %d", key, p.Height(), height)
	}
}

func checkHeightBound(t *testing.T, tree *avl.Tree) {
	t.Helper()
	limit := 1.45 * math.Log2(float64(tree.Count()+2))
	if float64(tree.Height()) > limit {
		t.Fatalf("height: %d exceeds: %.2f for: %d nodes", tree.Height(), limit, tree.Count())
	}
}
