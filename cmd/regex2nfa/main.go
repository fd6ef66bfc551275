// Command regex2nfa converts a regex document into a Thompson NFA document.
package main

import (
	"os"

	"github.com/geange/regexfa/internal/cli"
)

func main() {
	os.Exit(cli.Main("regex2nfa", os.Args[1:], os.Stdout, os.Stderr, cli.RegexToNFA))
}
