package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"position": {Args: []string{"startpos", "sfen", "moves"}},
	"book":     {Args: []string{"load", "save", "lookup", "play"}},
	"stats":    {Options: []string{"-bins", "-width"}},
	"check":    {Options: []string{"-workers"}},
	"help":     {Args: []string{"position", "move", "hash", "book", "stats", "check", "script"}},
	"setconfig": {
		Args: []string{"debug", "book-path", "record-workers"},
	},
}

var commandNames = []string{
	"help", "position", "move", "undo", "flip", "show", "moves", "hash",
	"book", "stats", "check", "setconfig", "script", "exit",
}

// Do implements the readline.AutoComplete interface. Inside "move" and
// "hash", it completes with the moves the book knows for the position.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		switch cmdName {
		case "move", "m", "hash":
			completions = c.bookMoves()
		}
		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}

func (c *ShellCompleter) bookMoves() []string {
	if c.sc.book == nil || c.sc.game == nil {
		return nil
	}
	var moves []string
	for _, choice := range c.sc.book.Lookup(c.sc.game.Position) {
		moves = append(moves, choice.Move.ToSfen())
	}
	return moves
}
