// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present and the tree is unchanged
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly new sub-tree root
func insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}

	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, p.right)
	default:
		// duplicate: shape unchanged so heights are still valid
		return p, false
	}
	if !added {
		return p, false
	}

	p.fixHeight()

	balance := balanceFactor(p)

	if balance > 1 {
		if +1 == p.left.key.Compare(key) {
			// LL: single right rotation
			return rotateRight(p), added
		}
		// LR: double rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), added
	}

	if balance < -1 {
		if -1 == p.right.key.Compare(key) {
			// RR: single left rotation
			return rotateLeft(p), added
		}
		// RL: double rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), added
	}

	return p, added
}
