package feedback

import (
	"errors"
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"querysift/pkg/search"
)

// Judge reports whether a surfaced result is relevant. Implementations may
// block indefinitely waiting for an answer.
type Judge interface {
	Judge(result search.Result, index int) (bool, error)
}

// Prompt displays each result and reads a Y/N judgment from the terminal.
type Prompt struct{}

var _ Judge = (*Prompt)(nil)

func NewPrompt() *Prompt {
	return &Prompt{}
}

func (p *Prompt) Judge(result search.Result, index int) (bool, error) {
	fmt.Printf("Result %d\n[\n", index)
	fmt.Printf(" URL: %s\n", result.Link)
	fmt.Printf(" Title: %s\n", result.Title)
	fmt.Printf(" Summary: %s\n]\n\n", result.Snippet)

	answer := prompt.Input("Relevant (Y/N)? ", judgeCompleter)
	return strings.ToLower(strings.TrimSpace(answer)) == "y", nil
}

func judgeCompleter(d prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{
		{Text: "y", Description: "relevant"},
		{Text: "n", Description: "not relevant"},
	}
	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

var ErrNoMoreJudgments = errors.New("scripted judge exhausted")

// Scripted answers from a fixed list, in order. For tests.
type Scripted struct {
	Answers []bool
	next    int
}

var _ Judge = (*Scripted)(nil)

func (s *Scripted) Judge(result search.Result, index int) (bool, error) {
	if s.next >= len(s.Answers) {
		return false, ErrNoMoreJudgments
	}
	answer := s.Answers[s.next]
	s.next++
	return answer, nil
}
