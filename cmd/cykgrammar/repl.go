package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/grammarforge/cykgrammar/cyk"
	"github.com/grammarforge/cykgrammar/lexer"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read lines interactively and print each parse",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// sessionReader wraps a readline.Instance the way
// dekarrin-tunaq's InteractiveCommandReader does: blank lines are
// swallowed rather than handed to the caller.
type sessionReader struct {
	rl *readline.Instance
}

func newSessionReader(prompt string) (*sessionReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, err
	}
	return &sessionReader{rl: rl}, nil
}

func (sr *sessionReader) ReadLine() (string, error) {
	for {
		line, err := sr.rl.Readline()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
}

func (sr *sessionReader) Close() error { return sr.rl.Close() }

func runRepl(cmd *cobra.Command, args []string) error {
	g, ip, err := loadGrammar()
	if err != nil {
		return err
	}
	kws := keywordSet(g)

	sessionID := uuid.New()
	pterm.Info.Println("session", sessionID.String())
	pterm.Info.Println("enter a line to parse, Ctrl-D to quit")

	reader, err := newSessionReader("cyk> ")
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		line, err := reader.ReadLine()
		if err == io.EOF || err == readline.ErrInterrupt {
			pterm.Info.Println("session", sessionID.String(), "closed")
			return nil
		}
		if err != nil {
			return err
		}
		evalLine(g, ip, kws, line)
	}
}

func evalLine(g *cyk.Grammar, ip *lexer.Interpreter, kws map[string]bool, line string) {
	tokens := lexer.Tokenize(line, kws)
	table, err := g.Parse(tokens)
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	results, err := table.Just(1)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	results = filterByGoal(results, parseGoal)
	if len(results) == 0 {
		pterm.Warning.Println("no parse")
		return
	}

	for _, r := range results {
		if r.Ambiguity() > 1 {
			pterm.Warning.Printfln("ambiguous (%d derivations)", r.Ambiguity())
			continue
		}
		var visitor cyk.Visitor
		if ip != nil {
			visitor = ip.Visitor(map[string]interface{}{})
		}
		values, err := r.Traverse(visitor)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		for _, v := range values {
			pterm.Success.Println(fmt.Sprint(v))
		}
	}
}
