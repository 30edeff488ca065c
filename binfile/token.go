// Package binfile decodes the tokenised resource files shared by
// Lego Racers, Paperboy and NBA 2000 into indented text.
package binfile

import "fmt"

// Token is a single opcode byte. Its meaning depends on the active
// config.Config and on the struct definitions seen so far in the file.
type Token uint8

func (t Token) String() string {
	return fmt.Sprintf("0x%02x", uint8(t))
}

// MarshalText keeps []Token rendered as a list of ids instead of base64.
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

const (
	TOKEN_STRING        Token = 0x02
	TOKEN_FLOAT         Token = 0x03
	TOKEN_INT           Token = 0x04
	TOKEN_OBJECT_OPEN   Token = 0x05
	TOKEN_OBJECT_CLOSE  Token = 0x06
	TOKEN_ARRAY_OPEN    Token = 0x07
	TOKEN_ARRAY_CLOSE   Token = 0x08
	TOKEN_Q4_4          Token = 0x0b
	TOKEN_BYTE          Token = 0x0c
	TOKEN_Q8_8          Token = 0x0d
	TOKEN_USHORT        Token = 0x0e
	TOKEN_Q4_12         Token = 0x0f
	TOKEN_Q11_5         Token = 0x10
	TOKEN_UNKNOWN_11    Token = 0x11
	TOKEN_BYTEN         Token = 0x12
	TOKEN_UNKNOWN_13    Token = 0x13
	TOKEN_LR_ARRAY      Token = 0x14
	TOKEN_LR_STRUCT_DEF Token = 0x16
	TOKEN_LR_BLOCK      Token = 0x27

	TOKEN_NBA_ARRAY      Token = 0x12
	TOKEN_NBA_STRUCT_DEF Token = 0x14
	TOKEN_NBA_BLOCK      Token = 0x25
)

// Action is what the decoder does when it meets a token.
type Action int

const (
	ACTION_UNKNOWN Action = iota
	ACTION_STRING
	ACTION_INT
	ACTION_FLOAT
	ACTION_Q20_12
	ACTION_OBJECT_OPEN
	ACTION_OBJECT_CLOSE
	ACTION_ARRAY_OPEN
	ACTION_ARRAY_CLOSE
	ACTION_BYTE
	ACTION_USHORT
	ACTION_Q4_4
	ACTION_Q8_8
	ACTION_Q4_12
	ACTION_Q11_5
	ACTION_BYTEN
	ACTION_UNKNOWN_11
	ACTION_UNKNOWN_13
	ACTION_ARRAY
	ACTION_STRUCT_DEF
	ACTION_BLOCK
	ACTION_STRUCT_INSTANCE
)

var actionNames = [...]string{
	ACTION_UNKNOWN:         "unknown",
	ACTION_STRING:          "string",
	ACTION_INT:             "int",
	ACTION_FLOAT:           "float",
	ACTION_Q20_12:          "Q20.12",
	ACTION_OBJECT_OPEN:     "{",
	ACTION_OBJECT_CLOSE:    "}",
	ACTION_ARRAY_OPEN:      "[",
	ACTION_ARRAY_CLOSE:     "]",
	ACTION_BYTE:            "byte",
	ACTION_USHORT:          "ushort",
	ACTION_Q4_4:            "Q4.4",
	ACTION_Q8_8:            "Q8.8",
	ACTION_Q4_12:           "Q4.12",
	ACTION_Q11_5:           "Q11.5",
	ACTION_BYTEN:           "ByteN",
	ACTION_UNKNOWN_11:      "UNKNOWN_11",
	ACTION_UNKNOWN_13:      "UNKNOWN_13",
	ACTION_ARRAY:           "array",
	ACTION_STRUCT_DEF:      "struct definition",
	ACTION_BLOCK:           "block",
	ACTION_STRUCT_INSTANCE: "struct",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}
