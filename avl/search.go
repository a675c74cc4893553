// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if the key is present in the tree
func (tree *Tree) Search(key Item) bool {
	return search(key, tree.root)
}

func search(key Item, tree *Node) bool {
	if nil == tree {
		return false
	}

	switch tree.key.Compare(key) {
	case +1: // tree.key > key
		return search(key, tree.left)
	case -1: // tree.key < key
		return search(key, tree.right)
	default:
		return true
	}
}
