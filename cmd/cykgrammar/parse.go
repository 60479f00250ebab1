package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/grammarforge/cykgrammar/cyk"
	"github.com/grammarforge/cykgrammar/lexer"
)

var parseGoal string

var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Parse a line of text and print its derivation",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseGoal, "goal", "expr", "nonterminal every top-level segment must reduce to")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, ip, err := loadGrammar()
	if err != nil {
		return err
	}
	tokens := lexer.Tokenize(args[0], keywordSet(g))

	table, err := g.Parse(tokens)
	if err != nil {
		return err
	}

	results, err := table.Just(1)
	if err != nil {
		return err
	}
	results = filterByGoal(results, parseGoal)
	if len(results) == 0 {
		pterm.Error.Println("no parse reduces the whole input to a single", parseGoal)
		return nil
	}

	for _, r := range results {
		if r.Ambiguity() > 1 {
			pterm.Warning.Printfln("ambiguous cover (%d derivations), skipping traversal", r.Ambiguity())
			continue
		}
		var visitor cyk.Visitor
		if ip != nil {
			visitor = ip.Visitor(map[string]interface{}{})
		}
		values, err := r.Traverse(visitor)
		if err != nil {
			return err
		}
		pterm.Success.Println("parsed:")
		for _, v := range values {
			fmt.Printf("  %v\n", v)
		}
	}
	return nil
}

func filterByGoal(results []cyk.Result, goal string) []cyk.Result {
	var out []cyk.Result
	for _, r := range results {
		if r.Len() == 1 && r.Head(0).Kind == cyk.KindNonterminal && r.Head(0).Name == goal {
			out = append(out, r)
		}
	}
	return out
}
