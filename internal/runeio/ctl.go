package runeio

import (
	"errors"
	"strconv"
	"strings"
)

// c0Names are the mnemonics for the classic ASCII control characters,
// indexed by code point.
var c0Names = [32]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "NL", "VT", "NP", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// c1Names are the mnemonics for the ISO-8859 control characters, indexed by
// code point less 0x80.
var c1Names = [32]string{
	"PAD", "HOP", "BPH", "NBH", "IND", "NEL", "SSA", "ESA",
	"HTS", "HTJ", "VTS", "PLD", "PLU", "RI", "SS2", "SS3",
	"DCS", "PU1", "PU2", "STS", "CCH", "MW", "SPA", "EPA",
	"SOS", "SGCI", "SCI", "CSI", "ST", "OSC", "PM", "APC",
}

// ControlWords maps control mnemonics like "<ESC>" (in either case) and
// caret forms like "^[" to their runes; all fall within a single byte.
var ControlWords = make(map[string]rune, 3*(len(c0Names)+len(c1Names))+4)

func init() {
	add := func(name string, r rune) {
		name = "<" + name + ">"
		ControlWords[strings.ToUpper(name)] = r
		ControlWords[strings.ToLower(name)] = r
		if caret := CaretForm(r); caret != "" {
			ControlWords[caret] = r
		}
	}
	for i, name := range c0Names {
		add(name, rune(i))
	}
	for i, name := range c1Names {
		add(name, rune(0x80+i))
	}
	add("SP", 0x20)
	add("DEL", 0x7f)
}

// CaretForm computes the ^-escaped printable form of a control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

var errInvalidRune = errors.New(`rune literal must be "^X" "<NAME>" or 'X'`)

// UnquoteRune parses a rune literal token: either a control mnemonic from
// ControlWords, or a single quoted character as understood by
// strconv.UnquoteChar, like 'A' or '\n'.
func UnquoteRune(token string) (rune, error) {
	if r, defined := ControlWords[token]; defined {
		return r, nil
	}
	if len(token) < 3 || token[0] != '\'' || token[len(token)-1] != '\'' {
		return 0, errInvalidRune
	}
	value, _, tail, err := strconv.UnquoteChar(token[1:len(token)-1], '\'')
	if err != nil {
		return 0, err
	}
	if tail != "" {
		return 0, errInvalidRune
	}
	return value, nil
}
