// Command smoked-golden-tests runs the smoked interpreter's golden-file test
// suite: each test file is fed to the interpreter on stdin and the captured
// stdout/stderr must match the <test>.out and <test>.err fixtures exactly.
//
// With no positional arguments the whole tests directory is run; otherwise
// each argument is run as a single test case.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AgustinCB/smoked/config"
	"github.com/AgustinCB/smoked/framework"
	"github.com/AgustinCB/smoked/goldentests"
	"github.com/AgustinCB/smoked/invoker"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	cfg := config.Default()
	if params.configFile != "" {
		var err error
		cfg, err = config.Load(params.configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if params.subject != "" {
		cfg.Subject.Command = params.subject
	}
	if params.testsDir != "" {
		cfg.TestsDir = params.testsDir
	}
	if params.searchPath != "" {
		cfg.Subject.SearchPath = params.searchPath
	}

	// An interrupt cancels the context, which kills any running subject
	// process; the invoker's deferred cleanup then removes its scratch
	// directory before we get here to exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inv := invoker.New(cfg.Subject.Command, cfg.EffectiveSearchPath())
	inv.SearchPathFlag = cfg.Subject.SearchPathFlag
	inv.OutSuffix = cfg.Fixtures.OutSuffix
	inv.ErrSuffix = cfg.Fixtures.ErrSuffix

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)
	fmt.Println("Running test suite")

	var results framework.Results
	if len(params.testFiles) > 0 {
		results = goldentests.RunTestFiles(ctx, inv, params.testFiles, params.filters.AsFilter, testLogger)
	} else {
		var err error
		results, err = goldentests.RunTestSuite(ctx, inv, cfg.TestsDir, params.filters.AsFilter, testLogger)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(1)
	}
	if !results.OK() {
		os.Exit(1)
	}
}
