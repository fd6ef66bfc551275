// Command nfa2dfa converts an NFA document into a DFA document by subset
// construction.
package main

import (
	"os"

	"github.com/geange/regexfa/internal/cli"
)

func main() {
	os.Exit(cli.Main("nfa2dfa", os.Args[1:], os.Stdout, os.Stderr, cli.NFAToDFA))
}
