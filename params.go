package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AgustinCB/smoked/framework"
)

type commandParams struct {
	configFile string
	subject    string
	testsDir   string
	searchPath string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
	testFiles  []string
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configFile, "config", "", "path to a YAML config file")
	fs.StringVar(&c.subject, "subject", "", "command for the interpreter under test")
	fs.StringVar(&c.testsDir, "tests", "", "directory containing the test files")
	fs.StringVar(&c.searchPath, "imports", "", "module search path passed to the interpreter")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	c.testFiles = fs.Args()
	return true
}
