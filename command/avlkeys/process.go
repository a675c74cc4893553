// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// build the tree from the insert list then report each search
func process(configuration *Configuration, w io.Writer, log *logger.L, verbose bool) error {

	tree := avl.New()

	for _, k := range configuration.Insert {
		added := tree.Insert(avl.IntKey(k))
		log.Debugf("insert: %d  added: %t", k, added)
		if verbose {
			if added {
				fmt.Fprintf(w, "insert %d: added\n", k)
			} else {
				fmt.Fprintf(w, "insert %d: already present\n", k)
			}
		}
	}
	log.Infof("keys: %d  height: %d", tree.Count(), tree.Height())

	for _, k := range configuration.Search {
		found := tree.Search(avl.IntKey(k))
		log.Debugf("search: %d  found: %t", k, found)
		fmt.Fprintf(w, "search %d: %t\n", k, found)
	}

	if configuration.Print {
		depth := tree.Print(w)
		log.Debugf("depth: %d", depth)
	}

	if configuration.Check {
		if err := tree.Check(); nil != err {
			log.Errorf("check failed: %s", err)
			return err
		}
		log.Info("check passed")
		if verbose {
			fmt.Fprintf(w, "check: passed\n")
		}
	}

	nodes, rotations := avl.Statistics()
	log.Infof("nodes created: %d  rotations: %d", nodes, rotations)

	return nil
}

// keys are limited to the integers a Lua number holds exactly
const keyLimit = 1 << 53

// convert command line arguments to integer keys
func parseKeys(arguments []string) ([]int64, error) {
	keys := make([]int64, 0, len(arguments))
	for _, s := range arguments {
		k, err := strconv.ParseInt(s, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		k, err = checkKey(float64(k))
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// convert configuration numbers to integer keys
func numberKeys(numbers []float64) ([]int64, error) {
	keys := make([]int64, 0, len(numbers))
	for _, n := range numbers {
		k, err := checkKey(n)
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// reject fractions, NaN, infinities and anything too large to be exact
func checkKey(n float64) (int64, error) {
	if math.Trunc(n) != n || n >= keyLimit || n <= -keyLimit {
		return 0, fault.ErrInvalidKey
	}
	return int64(n), nil
}
