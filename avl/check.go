// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, cached heights and balance of every node
func (tree *Tree) Check() error {
	_, n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker
//
// every key in p must lie strictly between low and high (nil = unbounded)
// returns the recomputed height and the number of nodes
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && -1 != low.Compare(p.key) {
		return 0, 0, fault.ErrKeyOrder
	}
	if nil != high && +1 != high.Compare(p.key) {
		return 0, 0, fault.ErrKeyOrder
	}

	hl, nl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	hr, nr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if d := hl - hr; d > 1 || d < -1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return h, 1 + nl + nr, nil
}
