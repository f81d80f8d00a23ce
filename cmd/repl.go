package cmd

import (
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/lohvht/golithp"
)

var promptState struct {
	LivePrefix          string
	LivePrefixIsEnabled bool
}

const golithpPrefix = "golithp> "
const continuationPrefix = "........ "

// bracketStack tracks open '(' while a multi-line expression is being
// typed. The core grammar has exactly one bracket pair, unlike the went
// dialect this REPL was adapted from.
type bracketStack int

func (s *bracketStack) empty() bool { return *s == 0 }

type bracketLineStatus int

const (
	normal   bracketLineStatus = iota // balanced, ready to evaluate
	open                              // still has unclosed '(' pending more lines
	errbrack                          // a ')' closed more than was open
)

// collectBrackets folds in's parens into the running depth and reports
// whether the accumulated query is ready to evaluate.
func (s *bracketStack) collectBrackets(in string) bracketLineStatus {
	for _, r := range in {
		switch r {
		case '(':
			*s++
		case ')':
			if s.empty() {
				return errbrack
			}
			*s--
		}
	}
	if s.empty() {
		return normal
	}
	return open
}

func runPrompt() {
	interpreter := golithp.New("repl")
	var brackets bracketStack
	var query strings.Builder

	executor := func(in string) {
		query.WriteString(in)
		query.WriteString("\n")
		switch brackets.collectBrackets(in) {
		case open:
			promptState.LivePrefix = continuationPrefix
			promptState.LivePrefixIsEnabled = true
		case errbrack:
			fmt.Println("SyntaxError: unmatched ')'")
			brackets = 0
			query.Reset()
			promptState.LivePrefixIsEnabled = false
		case normal:
			runOnce(interpreter, query.String())
			query.Reset()
			promptState.LivePrefixIsEnabled = false
		}
	}

	p := prompt.New(
		executor,
		completer,
		prompt.OptionPrefix(golithpPrefix),
		prompt.OptionLivePrefix(changeLivePrefix),
		prompt.OptionTitle("golithp"),
	)
	p.Run()
}

func changeLivePrefix() (string, bool) {
	return promptState.LivePrefix, promptState.LivePrefixIsEnabled
}

func completer(in prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{
		{Text: "define", Description: "bind a name, or define a procedure"},
		{Text: "lambda", Description: "construct a closure"},
		{Text: "if", Description: "conditional"},
		{Text: "quote", Description: "return an expression unevaluated"},
		{Text: "set!", Description: "rebind an existing name"},
	}
	return prompt.FilterHasPrefix(suggestions, in.GetWordBeforeCursor(), true)
}

func runOnce(interpreter *golithp.Interpreter, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	result, err := interpreter.Evaluate(query)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println(result)
}
