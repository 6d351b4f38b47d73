package emitter

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/napalu/grassplain/errs"
	"github.com/napalu/grassplain/schema"
	"github.com/napalu/grassplain/types"
)

//go:embed templates/python.py.tmpl
var pythonTemplateText string

var pythonTemplate = template.Must(template.New("python").Parse(pythonTemplateText))

// PythonEmitter generates a self-contained Python 3 module exposing
// parse_args and render_help
type PythonEmitter struct {
	config *Config
}

// NewPythonEmitter creates the Python backend
func NewPythonEmitter(configs ...ConfigureEmitterFunc) Emitter {
	return &PythonEmitter{config: newConfig(configs...)}
}

func (e *PythonEmitter) Language() types.TargetLanguage {
	return types.Python
}

func (e *PythonEmitter) FileExtension() string {
	return ".py"
}

type pythonField struct {
	Name string
	Type string
}

type pythonClassData struct {
	Name   string
	Doc    string
	Fields []pythonField
}

type pythonScopeData struct {
	Path        string
	Arguments   []string
	Options     []string
	Flags       []string
	Subcommands string
	Fixed       int
	Variadic    string
	Result      string
	Usage       string
	Help        string
}

type pythonData struct {
	Source      string
	Description string
	ProgramName string
	Classes     []pythonClassData
	Scopes      []pythonScopeData
	ResultTypes string
}

// scopeState is what a node passes on to its children
type scopeState struct {
	fields map[string]entity
	chain  []pythonField
}

// Emit renders the module. Scopes are declared in walk order, each with one
// _Argument, _Option or _Flag per declared entry.
func (e *PythonEmitter) Emit(cfg *schema.ConfigurationFile) (string, error) {
	data := pythonData{
		Source:      e.config.sourceName,
		Description: pyString(cfg.Meta.Description),
		ProgramName: pyString(e.config.ProgramName()),
	}

	states := make(map[*schema.Node]*scopeState)
	classes := make(map[string]*schema.Node)
	var classNames []string

	err := schema.Walk(cfg, func(node *schema.Node) error {
		class, err := className(node)
		if err != nil {
			return errs.NewEmissionError(err)
		}
		if other, taken := classes[class]; taken {
			return errs.NewEmissionError(errs.ErrClassCollision.WithArgs(displayPath(other), displayPath(node), class))
		}
		classes[class] = node
		classNames = append(classNames, class)

		state := &scopeState{fields: make(map[string]entity)}
		if parent, ok := states[node.Parent]; ok {
			for k, v := range parent.fields {
				state.fields[k] = v
			}
			state.chain = append(state.chain, parent.chain...)
		}
		states[node] = state

		scope, err := e.scopeData(cfg, node, class, state)
		if err != nil {
			return errs.NewEmissionError(err)
		}
		data.Scopes = append(data.Scopes, scope)

		fields := make([]pythonField, 0, len(state.chain)+1)
		fields = append(fields, pythonField{Name: commandField, Type: "Tuple[str, ...]"})
		fields = append(fields, state.chain...)
		data.Classes = append(data.Classes, pythonClassData{
			Name:   class,
			Doc:    classDoc(node),
			Fields: fields,
		})

		return nil
	})
	if err != nil {
		return "", err
	}

	data.ResultTypes = strings.Join(classNames, ", ")

	var buf bytes.Buffer
	if err := pythonTemplate.Execute(&buf, data); err != nil {
		return "", errs.NewEmissionError(err)
	}

	e.config.logger.Debug("emitted python module",
		"scopes", len(data.Scopes),
		"bytes", buf.Len())

	return buf.String(), nil
}

func (e *PythonEmitter) scopeData(cfg *schema.ConfigurationFile, node *schema.Node, class string, state *scopeState) (pythonScopeData, error) {
	scope := node.Scope
	claim := func(ent entity, typ string) (string, error) {
		field, err := fieldName(ent)
		if err != nil {
			return "", err
		}
		field, free := freeField(state.fields, fieldCandidates(node, ent, field))
		if !free {
			other := state.fields[field]
			return "", errs.ErrIdentifierCollision.WithArgs(other.kind, other.name, ent.kind, ent.name, field)
		}
		state.fields[field] = ent
		state.chain = append(state.chain, pythonField{Name: field, Type: typ})

		return field, nil
	}

	data := pythonScopeData{
		Path:   pyTuple(node.Path),
		Fixed:  scope.FixedArity(),
		Result: class,
	}
	if _, ok := scope.Variadic(); ok {
		data.Variadic = "True"
	} else {
		data.Variadic = "False"
	}

	for pair := scope.Arguments.Oldest(); pair != nil; pair = pair.Next() {
		typ := "List[str]"
		if pair.Value.NumberOfArguments == 1 {
			typ = "str"
		}
		field, err := claim(entity{kind: "argument", name: pair.Key}, typ)
		if err != nil {
			return data, err
		}
		data.Arguments = append(data.Arguments, fmt.Sprintf("_Argument(name=%s, field=%s, arity=%d)",
			pyString(pair.Key), pyString(field), pair.Value.NumberOfArguments))
	}

	for pair := scope.Options.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value
		typ := "Optional[str]"
		if opt.IsList() {
			typ = "Optional[List[str]]"
		}
		field, err := claim(entity{kind: "option", name: pair.Key}, typ)
		if err != nil {
			return data, err
		}
		def := "None"
		if opt.Default != nil {
			def = pyString(*opt.Default)
		}
		data.Options = append(data.Options, fmt.Sprintf("_Option(name=%s, field=%s, delimiter=%s, default=%s)",
			pyString(pair.Key), pyString(field), pyString(opt.Delimiter), def))
	}

	for pair := scope.Flags.Oldest(); pair != nil; pair = pair.Next() {
		field, err := claim(entity{kind: "flag", name: pair.Key}, "int")
		if err != nil {
			return data, err
		}
		data.Flags = append(data.Flags, fmt.Sprintf("_Flag(name=%s, field=%s, short=%s, default=%d)",
			pyString(pair.Key), pyString(field), pyString(pair.Value.Short), pair.Value.Default))
	}

	children := node.Children(cfg)
	names := make([]string, 0, children.Len())
	for pair := children.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	data.Subcommands = pyTuple(names)

	help := BuildHelp(cfg, node)
	data.Usage = pyString(help.Usage)
	data.Help = pyString(help.Body)

	return data, nil
}

func classDoc(node *schema.Node) string {
	if node.IsRoot() {
		return pyString("Values parsed for the global scope.")
	}

	return pyString("Values parsed for the " + node.PathString() + " subcommand.")
}

// pyString quotes s; Go escapes are a subset of what Python string literals accept
func pyString(s string) string {
	return strconv.Quote(s)
}

func pyTuple(items []string) string {
	switch len(items) {
	case 0:
		return "()"
	case 1:
		return "(" + pyString(items[0]) + ",)"
	}

	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = pyString(item)
	}

	return "(" + strings.Join(quoted, ", ") + ")"
}
