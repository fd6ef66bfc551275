// Command minimizedfa minimizes a DFA document.
package main

import (
	"os"

	"github.com/geange/regexfa/internal/cli"
)

func main() {
	os.Exit(cli.Main("minimizedfa", os.Args[1:], os.Stdout, os.Stderr, cli.MinimizeDFA))
}
