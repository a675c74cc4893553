// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"
)

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 when the receiver is less than, equal
// to or greater than the argument.  The argument is always the same
// concrete type as the receiver.
type Item interface {
	Compare(interface{}) int
}

// IntKey - integer key
type IntKey int64

// Compare - integer ordering
func (k IntKey) Compare(x interface{}) int {
	y := x.(IntKey)
	switch {
	case k < y:
		return -1
	case k > y:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (k IntKey) String() string {
	return strconv.FormatInt(int64(k), 10)
}

// StringKey - string key in byte-wise order
type StringKey string

// Compare - lexical ordering
func (k StringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(StringKey)))
}

// String - the key itself
func (k StringKey) String() string {
	return string(k)
}
