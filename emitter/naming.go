package emitter

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/napalu/grassplain/errs"
	"github.com/napalu/grassplain/schema"
)

const (
	commandField    = "command"
	rootClass       = "ParsedArguments"
	classSuffix     = "Arguments"
	rootDisplayName = "global"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// entity names the kind and declared name of something that becomes a field
type entity struct {
	kind string
	name string
}

// fieldName maps a declared name to a NamedTuple field name
func fieldName(e entity) (string, error) {
	if strings.HasPrefix(e.name, "_") {
		return "", errs.ErrReservedIdentifier.WithArgs(e.kind, e.name, e.name)
	}

	field := strcase.ToSnake(e.name)
	if !identifierPattern.MatchString(field) {
		return "", errs.ErrInvalidIdentifier.WithArgs(e.kind, e.name)
	}
	if strings.HasPrefix(field, "_") || field == commandField {
		return "", errs.ErrReservedIdentifier.WithArgs(e.kind, e.name, field)
	}
	if pythonKeywords[field] {
		field += "_"
	}

	return field, nil
}

// fieldCandidates lists the field names tried for an entity of node, best
// first. Scopes are claimed outermost first, so a name already taken further
// up the chain or by another kind in the same scope is qualified with the
// subcommand path, then with the entity kind.
func fieldCandidates(node *schema.Node, e entity, field string) []string {
	snake := strcase.ToSnake(e.name)
	candidates := []string{field}

	var qualified []string
	if node.IsRoot() {
		qualified = []string{e.kind + "_" + snake}
	} else {
		prefix := strcase.ToSnake(strings.Join(node.Path, "_"))
		qualified = []string{prefix + "_" + snake, prefix + "_" + e.kind + "_" + snake}
	}
	for _, q := range qualified {
		if identifierPattern.MatchString(q) && !pythonKeywords[q] {
			candidates = append(candidates, q)
		}
	}

	return candidates
}

// freeField returns the first candidate not in taken. When every candidate is
// taken it returns the first one and false.
func freeField(taken map[string]entity, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if _, ok := taken[candidate]; !ok {
			return candidate, true
		}
	}

	return candidates[0], false
}

// className returns the result class name of node
func className(node *schema.Node) (string, error) {
	if node.IsRoot() {
		return rootClass, nil
	}

	class := strcase.ToCamel(strings.Join(node.Path, "_")) + classSuffix
	if !identifierPattern.MatchString(class) || strings.HasPrefix(class, "_") {
		return "", errs.ErrInvalidIdentifier.WithArgs("subcommand", node.PathString())
	}

	return class, nil
}

func displayPath(node *schema.Node) string {
	if node.IsRoot() {
		return rootDisplayName
	}

	return node.PathString()
}
