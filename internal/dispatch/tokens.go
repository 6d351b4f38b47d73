package dispatch

import "strings"

type tokenKind int

const (
	positionalToken tokenKind = iota
	longToken
	shortToken
	terminatorToken
)

// tokens is a cursor over the command line after the program name. Once the
// terminator "--" has been read every later token is positional.
type tokens struct {
	pos        int
	args       []string
	terminated bool
}

func newTokens(args []string) *tokens {
	return &tokens{
		pos:  -1,
		args: args,
	}
}

// next advances to the following token and classifies it. For long and short
// tokens text is what follows the leading dashes.
func (t *tokens) next() (kind tokenKind, text string, ok bool) {
	if t.pos+1 >= len(t.args) {
		return positionalToken, "", false
	}
	t.pos++
	token := t.args[t.pos]

	switch {
	case t.terminated, token == "-", !strings.HasPrefix(token, "-"):
		return positionalToken, token, true
	case token == "--":
		t.terminated = true
		return terminatorToken, token, true
	case strings.HasPrefix(token, "--"):
		return longToken, token[2:], true
	default:
		return shortToken, token[1:], true
	}
}

// value consumes the following token verbatim as an option value
func (t *tokens) value() (string, bool) {
	if t.pos+1 >= len(t.args) {
		return "", false
	}
	t.pos++

	return t.args[t.pos], true
}
