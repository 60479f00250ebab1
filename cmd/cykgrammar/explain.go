package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/grammarforge/cykgrammar/diagnostics"
	"github.com/grammarforge/cykgrammar/lexer"
)

var explainCmd = &cobra.Command{
	Use:   "explain [text]",
	Short: "Report shortest covers, relevant rules, and completion distance for a line of text",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	g, _, err := loadGrammar()
	if err != nil {
		return err
	}
	tokens := lexer.Tokenize(args[0], keywordSet(g))

	table, err := g.Parse(tokens)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("%d tokens, shortest cover length %d, %d total derivations", table.N(), table.Shortest(), table.Len())

	lines, err := diagnostics.VisualizeIntervals(table)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		pterm.Warning.Println("no single segment covers the full input")
	}
	for _, line := range lines {
		fmt.Println(line)
	}

	relevant, err := diagnostics.RelevantRuleset(table)
	if err != nil {
		return err
	}
	if len(relevant) > 0 {
		pterm.Info.Println("rules relevant to the shortest covers:")
		for _, r := range relevant {
			fmt.Println("  " + r.String())
		}
	}

	info, err := diagnostics.ComputeShortestSequences(g)
	if err != nil {
		return err
	}
	groups := diagnostics.RulesByNonterminal(g)
	distances := diagnostics.CompletionDistanceTo(info.Lengths, groups, map[string]bool{parseGoal: true})
	if d, ok := distances["stmt"]; ok {
		pterm.Info.Println("estimated completion distance from stmt:", d)
	}
	return nil
}
