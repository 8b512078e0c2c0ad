package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/shogimove/board"
	"github.com/domino14/shogimove/book"
	"github.com/domino14/shogimove/config"
	"github.com/domino14/shogimove/history"
	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/usi"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errExit              = errors.New("exit")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type ShellController struct {
	l          *readline.Instance
	config     *config.Config
	execPath   string
	gitVersion string

	game    *usi.Game
	book    *book.Book
	history *history.Table
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := newController(cfg, execPath, gitVersion)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mshogimove>\033[0m ",
		HistoryFile:     "/tmp/shogimove_readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

func newController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := &ShellController{
		config:     cfg,
		execPath:   execPath,
		gitVersion: gitVersion,
		history:    history.New(),
		game:       newGame(board.StartPos()),
	}
	if path := cfg.GetString(config.ConfigBookPath); path != "" {
		b, err := book.LoadCached(path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("no-book-loaded")
		} else {
			sc.book = b
		}
	}
	return sc
}

func newGame(pos *board.Position) *usi.Game {
	return &usi.Game{Start: pos, Position: pos.Copy(), Moves: []move.Move{}}
}

func (sc *ShellController) stdout() io.Writer {
	if sc.l != nil {
		return sc.l.Stdout()
	}
	return os.Stdout
}

func (sc *ShellController) stderr() io.Writer {
	if sc.l != nil {
		return sc.l.Stderr()
	}
	return os.Stderr
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.stdout())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.stderr())
}

// extractFields splits a line into a command, its arguments and its
// -key value options. A lone "-" is an argument, since SFEN uses it for
// empty hands.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}

	for idx := 1; idx < len(fields); idx++ {
		f := fields[idx]
		if strings.HasPrefix(f, "-") && f != "-" {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := f[1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, f)
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit":
		return nil, errExit
	case "help":
		return sc.help(cmd)
	case "position":
		return sc.position(cmd)
	case "move", "m":
		return sc.play(cmd)
	case "undo":
		return sc.undo(cmd)
	case "flip":
		return sc.flip(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "moves":
		return sc.moves(cmd)
	case "hash":
		return sc.hash(cmd)
	case "book":
		return sc.bookCmd(cmd)
	case "stats":
		return sc.stats(cmd)
	case "check":
		return sc.check(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	case "script":
		return sc.script(cmd)
	default:
		log.Debug().Msgf("command %q not found", cmd.cmd)
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
}

// Execute runs a single command line, then exits.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line)
	if err != nil {
		if !errors.Is(err, errExit) {
			sc.showError(err)
		}
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		resp, err := sc.standardModeSwitch(line)
		if errors.Is(err, errExit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
