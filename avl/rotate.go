// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// single right rotation, returns the new sub-tree root
//
//        y            x
//       / \          / \
//      x   c   ->   a   y
//     / \              / \
//    a   b            b   c
func rotateRight(y *Node) *Node {
	if nil == y || nil == y.left {
		fault.Panic("avl: right rotation requires a left child")
	}
	x := y.left
	y.left = x.right
	x.right = y

	y.fixHeight()
	x.fixHeight()

	countRotation()
	return x
}

// single left rotation, returns the new sub-tree root
//
//      x                y
//     / \              / \
//    a   y     ->     x   c
//       / \          / \
//      b   c        a   b
func rotateLeft(x *Node) *Node {
	if nil == x || nil == x.right {
		fault.Panic("avl: left rotation requires a right child")
	}
	y := x.right
	x.right = y.left
	y.left = x

	x.fixHeight()
	y.fixHeight()

	countRotation()
	return y
}
