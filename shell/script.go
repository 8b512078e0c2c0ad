package shell

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"

	"github.com/domino14/shogimove/move"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("shogimove_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// runCommand returns a Lua function running the named shell command with
// the string it is called with as arguments.
func runCommand(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		line := strings.TrimSpace(name + " " + L.OptString(1, ""))
		sc := getShell(L)
		r, err := sc.standardModeSwitch(line)
		if err != nil {
			log.Err(err).Str("cmd", name).Msg("error-executing-script-command")
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		L.Push(lua.LString(r.message))
		// return number of results pushed to stack.
		return 1
	}
}

func Sfen(L *lua.LState) int {
	sc := getShell(L)
	L.Push(lua.LString(sc.game.Position.ToSfen()))
	return 1
}

// Moves pushes a table describing every move played so far.
func Moves(L *lua.LState) int {
	sc := getShell(L)
	tbl := L.NewTable()
	for _, m := range sc.game.Moves {
		entry := L.NewTable()
		entry.RawSetString("sfen", lua.LString(m.ToSfen()))
		entry.RawSetString("drop", lua.LBool(m.IsDrop()))
		entry.RawSetString("capture", lua.LBool(m.IsCapture()))
		entry.RawSetString("promotion", lua.LBool(m.IsPromotion()))
		if h, err := m.PerfectHash(); err == nil {
			entry.RawSetString("hash", lua.LNumber(h))
		}
		tbl.Append(entry)
	}
	L.Push(tbl)
	return 1
}

// Flip mirrors a move given in USI notation, without needing a position.
func Flip(L *lua.LState) int {
	text := L.CheckString(1)
	sc := getShell(L)
	m, err := move.FromSfenPosition(text, sc.game.Position)
	if err != nil {
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	L.Push(lua.LString(m.Flip().ToSfen()))
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("shogimove_shell", lsc)
	for _, name := range []string{"position", "move", "undo", "flip", "show",
		"hash", "book", "stats", "check", "setconfig"} {
		L.SetGlobal("shogimove_"+name, L.NewFunction(runCommand(name)))
	}
	L.SetGlobal("shogimove_sfen", L.NewFunction(Sfen))
	L.SetGlobal("shogimove_moves", L.NewFunction(Moves))
	L.SetGlobal("shogimove_flip_move", L.NewFunction(Flip))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	if result, ok := L.GetGlobal("result").(lua.LString); ok {
		return msg(string(result)), nil
	}
	return msg("script finished"), nil
}
