// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "insert", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'i'},
		{Long: "search", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s %s", program, usage)
	}

	// commands that do not need any configuration
	if len(arguments) > 0 && processSetupCommand(os.Stdout, program, arguments) {
		return
	}

	configurationFile := ""
	switch len(options["config-file"]) {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line keys follow those from the configuration
	insertKeys, err := parseKeys(options["insert"])
	if nil != err {
		exitwithstatus.Message("%s: insert error: %s", program, err)
	}
	searchKeys, err := parseKeys(options["search"])
	if nil != err {
		exitwithstatus.Message("%s: search error: %s", program, err)
	}
	masterConfiguration.Insert = append(masterConfiguration.Insert, insertKeys...)
	masterConfiguration.Search = append(masterConfiguration.Search, searchKeys...)
	if len(options["check"]) > 0 {
		masterConfiguration.Check = true
	}
	if len(options["print"]) > 0 {
		masterConfiguration.Print = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	configLogger := logger.New("config")
	configLogger.Infof("configuration file: %q", configurationFile)
	configLogger.Debugf("masterConfiguration: %+v", masterConfiguration)

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)

	var stdout io.Writer = os.Stdout
	if len(options["quiet"]) > 0 {
		stdout = ioutil.Discard
	}

	err = process(masterConfiguration, stdout, log, len(options["verbose"]) > 0)
	if nil != err {
		log.Criticalf("process error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}
