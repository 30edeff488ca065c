package binfile

import (
	"github.com/mogaika/bindump/config"
)

type rule struct {
	when   func(c config.Config) bool
	match  func(t Token) bool
	action Action
}

func always(config.Config) bool         { return true }
func onPSX(c config.Config) bool        { return c.Platform == config.PSX }
func notPSX(c config.Config) bool       { return c.Platform != config.PSX }
func legoEngine(c config.Config) bool   { return c.IsLegoEngine() }
func legoConsole(c config.Config) bool  { return c.IsLegoEngine() && c.IsConsole() }
func paperboyOnly(c config.Config) bool { return c.Game == config.Paperboy }
func nba2000Only(c config.Config) bool  { return c.Game == config.NBA2000 }
func is(id Token) func(Token) bool      { return func(t Token) bool { return t == id } }
func atLeast(id Token) func(Token) bool { return func(t Token) bool { return t >= id } }

// rules is evaluated top to bottom and the first match wins. Several ids
// are reused between games (0x12 is ByteN on Lego console builds and the
// array opcode in NBA 2000), so the order is significant.
var rules = []rule{
	{always, is(TOKEN_STRING), ACTION_STRING},
	{always, is(TOKEN_INT), ACTION_INT},
	{always, is(TOKEN_OBJECT_OPEN), ACTION_OBJECT_OPEN},
	{always, is(TOKEN_OBJECT_CLOSE), ACTION_OBJECT_CLOSE},
	{always, is(TOKEN_ARRAY_OPEN), ACTION_ARRAY_OPEN},
	{always, is(TOKEN_ARRAY_CLOSE), ACTION_ARRAY_CLOSE},
	{always, is(TOKEN_BYTE), ACTION_BYTE},
	{always, is(TOKEN_USHORT), ACTION_USHORT},

	// PSX builds store fixed point where the others store floats
	{onPSX, is(TOKEN_FLOAT), ACTION_Q20_12},
	{notPSX, is(TOKEN_FLOAT), ACTION_FLOAT},

	{legoEngine, is(TOKEN_Q4_4), ACTION_Q4_4},
	{legoEngine, is(TOKEN_Q8_8), ACTION_Q8_8},

	{legoConsole, is(TOKEN_Q4_12), ACTION_Q4_12},
	{legoConsole, is(TOKEN_Q11_5), ACTION_Q11_5},
	{legoConsole, is(TOKEN_BYTEN), ACTION_BYTEN},

	{paperboyOnly, is(TOKEN_UNKNOWN_11), ACTION_UNKNOWN_11},
	{paperboyOnly, is(TOKEN_UNKNOWN_13), ACTION_UNKNOWN_13},

	{legoEngine, is(TOKEN_LR_ARRAY), ACTION_ARRAY},
	{legoEngine, is(TOKEN_LR_STRUCT_DEF), ACTION_STRUCT_DEF},
	{legoEngine, atLeast(TOKEN_LR_BLOCK), ACTION_BLOCK},

	{nba2000Only, is(TOKEN_NBA_ARRAY), ACTION_ARRAY},
	{nba2000Only, is(TOKEN_NBA_STRUCT_DEF), ACTION_STRUCT_DEF},
	{nba2000Only, atLeast(TOKEN_NBA_BLOCK), ACTION_BLOCK},
}

// ResolveBuiltin reports the built-in meaning of t under c, ignoring
// struct definitions.
func ResolveBuiltin(c config.Config, t Token) (Action, bool) {
	for _, r := range rules {
		if r.when(c) && r.match(t) {
			return r.action, true
		}
	}
	return ACTION_UNKNOWN, false
}

// Resolve picks the action for t. Struct definitions in reg are only
// consulted when no built-in rule matches.
func Resolve(c config.Config, reg *Registry, t Token) Action {
	if a, ok := ResolveBuiltin(c, t); ok {
		return a
	}
	if reg != nil {
		if _, ok := reg.Lookup(t); ok {
			return ACTION_STRUCT_INSTANCE
		}
	}
	return ACTION_UNKNOWN
}
