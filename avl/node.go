// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // 1 for a leaf
}

// global data for statistics
var m sync.Mutex      // to keep values in sync
var totalNodes uint64 // total nodes created
var totalRotations uint64

// create a new leaf node, this is the only place nodes are made
func newNode(key Item) *Node {
	m.Lock()
	totalNodes += 1
	m.Unlock()
	return &Node{
		key:    key,
		height: 1,
	}
}

func countRotation() {
	m.Lock()
	totalRotations += 1
	m.Unlock()
}

// Statistics - total nodes created and single rotations performed by
// all trees in this process
func Statistics() (nodes uint64, rotations uint64) {
	m.Lock()
	nodes = totalNodes
	rotations = totalRotations
	m.Unlock()
	return
}

// height of a sub-tree, an empty sub-tree has zero height
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// left height minus right height
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute the cached height from the children
func (p *Node) fixHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}
