// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlkeys.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"config":          "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
//
// Lua numbers arrive as float64 so the key lists are decoded raw and
// then validated into Insert and Search
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	InsertNumbers []float64            `gluamapper:"insert" json:"-"`
	SearchNumbers []float64            `gluamapper:"search" json:"-"`
	Insert        []int64              `gluamapper:"-" json:"insert"`
	Search        []int64              `gluamapper:"-" json:"search"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Print         bool                 `gluamapper:"print" json:"print"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	// fresh copy as the parser merges into an existing map
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	// absolute path to the main directory
	baseDirectory := ""
	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		baseDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = baseDirectory // same directory as the configuration file
	}
	options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.IsDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// keys must be whole numbers that a Lua number holds exactly
	insert, err := numberKeys(options.InsertNumbers)
	if nil != err {
		return nil, err
	}
	options.Insert = insert

	search, err := numberKeys(options.SearchNumbers)
	if nil != err {
		return nil, err
	}
	options.Search = search

	// log file must be a simple name placed in the log directory
	if !util.IsPlainFileName(options.Logging.File) {
		return nil, fault.ErrNotPlainFileName
	}

	// make absolute and create directories if they do not already exist
	d, err := util.EnsureDirectory(options.DataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}
	options.Logging.Directory = d

	// done
	return options, nil
}
