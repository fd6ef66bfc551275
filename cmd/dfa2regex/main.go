// Command dfa2regex converts a DFA document into a regex document by state
// elimination.
package main

import (
	"os"

	"github.com/geange/regexfa/internal/cli"
)

func main() {
	os.Exit(cli.Main("dfa2regex", os.Args[1:], os.Stdout, os.Stderr, cli.DFAToRegex))
}
