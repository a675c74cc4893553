// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlkeys - load integer keys into an AVL tree and report membership
//
// keys to insert and to search for come from an optional Lua
// configuration file followed by any --insert and --search options:
//
//   avlkeys --config-file=avlkeys.conf --search=20 --print
//
// the configuration file returns a table:
//
//   return {
//       data_directory = ".",
//       insert = { 10, 20, 30 },
//       search = { 20, 99 },
//       check = true,
//       logging = {
//           directory = "log",
//           file = "avlkeys.log",
//           size = 1048576,
//           count = 10,
//           levels = { DEFAULT = "info" },
//       },
//   }
package main
