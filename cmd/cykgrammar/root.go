package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/grammarforge/cykgrammar/cyk"
	"github.com/grammarforge/cykgrammar/internal/grammarfile"
	"github.com/grammarforge/cykgrammar/lexer"
)

var grammarPath string
var ruleTextPath string
var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "cykgrammar",
	Short: "Parse text against a context-free grammar with the CYK algorithm",
	Long: `cykgrammar provides three features:
- Parses a line of text and prints its derivation (parse).
- Runs an interactive read-parse-print loop (repl).
- Reports ambiguity/failure diagnostics for a line of text (explain).`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&grammarPath, "grammar", "g", "", "path to a TOML grammar file (default: built-in arithmetic demo)")
	rootCmd.PersistentFlags().StringVarP(&ruleTextPath, "rules", "r", "", "path to a bracket-notation rule file (<head> ::= item item | item), mutually exclusive with -g")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "trace CNF construction and CYK fill to stderr")
	cobra.OnInitialize(func() { cyk.SetDebug(debugFlag) })
}

// Execute runs the root command, printing any returned error to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// loadGrammar resolves -g into a Grammar plus the interpreter to evaluate
// it with. A TOML grammar file carries no interpreter, so its results are
// shown via the default parse-tree visitor rather than evaluated.
func loadGrammar() (*cyk.Grammar, *lexer.Interpreter, error) {
	if grammarPath != "" && ruleTextPath != "" {
		return nil, nil, errors.New("-g and -r are mutually exclusive")
	}
	if grammarPath != "" {
		g, err := grammarfile.Load(grammarPath)
		if err != nil {
			return nil, nil, err
		}
		return g, nil, nil
	}
	if ruleTextPath != "" {
		raw, err := os.ReadFile(ruleTextPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, "read rule file")
		}
		doc, err := grammarfile.ParseRuleText(string(raw))
		if err != nil {
			return nil, nil, err
		}
		g, err := grammarfile.Build(doc)
		if err != nil {
			return nil, nil, err
		}
		return g, nil, nil
	}
	g, ip := demoGrammar()
	return g, ip, nil
}

// keywordSet collects every Keyword specifier's value out of a grammar, so
// the reference tokenizer can reclassify matching sym runs as "keyword"
// tokens.
func keywordSet(g *cyk.Grammar) map[string]bool {
	out := map[string]bool{}
	specs, err := g.Specifiers()
	if err != nil {
		return demoKeywords
	}
	for _, s := range specs {
		if kw, ok := s.(cyk.Keyword); ok {
			out[kw.Value] = true
		}
	}
	for k := range demoKeywords {
		out[k] = true
	}
	return out
}
