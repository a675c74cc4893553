// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a set of unique keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and an insert rebuilds
// the path back to the root, applying a single or double rotation
// wherever the two sub-tree heights differ by two.
//
// Inserting a key that is already present is a no-op.  There is no
// delete and no associated data, only membership.
package avl
