package main

import (
	"strings"
	"unicode"
)

// Statement is a flat sequence of cells, executed under an instruction
// pointer; both input lines and compound word bodies are statements.
type Statement []Cell

func (stmt Statement) String() string {
	var sb strings.Builder
	for i, c := range stmt {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// tokenize splits a line into whitespace (or control character) delimited
// tokens.
func tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsControl(r) || unicode.IsSpace(r)
	})
}

// parse compiles a line of source into a statement.
//
// Tokens that don't name a word are normally an error, with two exceptions
// that let words be defined and used on the same line: tokens inside a
// ": name ... ;" span are left unresolved for ":" to classify when it runs,
// as are later uses of any name defined on the line, even one that was
// already defined before it.
func (vm *VM) parse(line string) (stmt Statement, err error) {
	tokens := tokenize(line)

	var (
		defined map[string]bool
		naming  bool // the next token names a definition
		inDef   bool // within a definition body
	)

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		switch token {
		case "(":
			j := i + 1
			for j < len(tokens) && !strings.HasSuffix(tokens[j], ")") {
				j++
			}
			if j >= len(tokens) {
				return nil, ErrUnterminatedComment
			}
			i = j
			continue

		case `\`:
			i = len(tokens)
			continue
		}

		c, err := classify(&vm.dict, token)
		switch {
		case naming:
			naming, inDef = false, true
			if defined == nil {
				defined = make(map[string]bool)
			}
			defined[token] = true
			err = nil

		case inDef:
			if token == ";" {
				inDef = false
			}
			err = nil

		case !c.IsNumber() && defined[token]:
			c, err = Cell{Token: token}, nil

		case token == ":":
			naming = true
		}
		if err != nil {
			return nil, err
		}

		stmt = append(stmt, c)
	}

	return stmt, nil
}
