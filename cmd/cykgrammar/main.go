// Command cykgrammar is a small demonstration front end for the cyk engine:
// it parses a line of text against either the built-in arithmetic demo
// grammar or a TOML grammar file, and prints the resulting derivation,
// ambiguity count, or diagnostic report depending on the subcommand.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
