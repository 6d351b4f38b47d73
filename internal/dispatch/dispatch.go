// Package dispatch parses an argv against a specification with the same
// semantics as the generated parsers, without generating anything. It backs
// the --try mode of the grassplain command and the behaviour tests of the
// backends.
package dispatch

import (
	"path/filepath"
	"strings"

	"github.com/napalu/grassplain/emitter"
	"github.com/napalu/grassplain/errs"
	"github.com/napalu/grassplain/schema"
)

const (
	helpName        = "help"
	helpShort       = 'h'
	fallbackProgram = "prog"
)

type parser struct {
	cfg      *schema.ConfigurationFile
	tokens   *tokens
	prog     string
	chain    []*schema.Node
	received [][]string
	options  map[*schema.Option]any
	flags    map[*schema.Flag]int
}

// Parse dispatches argv, whose first element is the program name. Errors are
// errs sentinels (unknown option, unknown subcommand, missing value,
// unexpected value, too few or too many arguments) or a *HelpRequestedError.
func Parse(cfg *schema.ConfigurationFile, argv []string) (*Result, error) {
	p := &parser{
		cfg:      cfg,
		prog:     fallbackProgram,
		chain:    []*schema.Node{cfg.Root()},
		received: [][]string{nil},
		options:  make(map[*schema.Option]any),
		flags:    make(map[*schema.Flag]int),
	}
	var args []string
	if len(argv) > 0 {
		if argv[0] != "" {
			p.prog = filepath.Base(argv[0])
		}
		args = argv[1:]
	}
	p.tokens = newTokens(args)

	if err := p.run(); err != nil {
		return nil, err
	}

	return p.result()
}

func (p *parser) run() error {
	for {
		kind, text, ok := p.tokens.next()
		if !ok {
			return nil
		}

		var err error
		switch kind {
		case positionalToken:
			err = p.positional(text)
		case longToken:
			err = p.long(text)
		case shortToken:
			err = p.shorts(text)
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) current() *schema.Node {
	return p.chain[len(p.chain)-1]
}

func (p *parser) positional(token string) error {
	node := p.current()
	got := p.received[len(p.received)-1]
	fixed := node.Scope.FixedArity()

	if len(got) >= fixed {
		if child, ok := node.Child(p.cfg, token); ok {
			p.chain = append(p.chain, child)
			p.received = append(p.received, nil)
			return nil
		}
		if _, variadic := node.Scope.Variadic(); !variadic {
			if node.Children(p.cfg).Len() > 0 {
				return errs.ErrUnknownSubcommand.WithArgs(token)
			}
			return errs.ErrTooMany.WithArgs(token)
		}
	}

	p.received[len(p.received)-1] = append(got, token)
	return nil
}

func (p *parser) long(arg string) error {
	name, value, hasValue := strings.Cut(arg, "=")

	if opt, ok := p.findOption(name); ok {
		if !hasValue {
			if value, hasValue = p.tokens.value(); !hasValue {
				return errs.ErrMissingValue.WithArgs(name)
			}
		}
		p.setOption(opt, value)
		return nil
	}

	if flag, ok := p.findFlag(name); ok {
		if hasValue {
			return errs.ErrUnexpectedValue.WithArgs(name)
		}
		p.flags[flag] = toggle(flag)
		return nil
	}

	if name == helpName {
		return p.help()
	}

	return errs.ErrUnknownOption.WithArgs("--" + name)
}

func (p *parser) shorts(cluster string) error {
	for _, short := range cluster {
		if flag, ok := p.findShort(string(short)); ok {
			p.flags[flag] = toggle(flag)
			continue
		}
		if short == helpShort {
			return p.help()
		}
		return errs.ErrUnknownOption.WithArgs("-" + string(short))
	}

	return nil
}

func (p *parser) help() error {
	node := p.current()
	return &HelpRequestedError{
		Command: commandOf(node.Path),
		Help:    emitter.BuildHelp(p.cfg, node).Render(p.prog),
	}
}

func (p *parser) findOption(name string) (*schema.Option, bool) {
	for i := len(p.chain) - 1; i >= 0; i-- {
		if opt, ok := p.chain[i].Scope.Options.Get(name); ok {
			return opt, true
		}
	}

	return nil, false
}

func (p *parser) findFlag(name string) (*schema.Flag, bool) {
	for i := len(p.chain) - 1; i >= 0; i-- {
		if flag, ok := p.chain[i].Scope.Flags.Get(name); ok {
			return flag, true
		}
	}

	return nil, false
}

func (p *parser) findShort(short string) (*schema.Flag, bool) {
	for i := len(p.chain) - 1; i >= 0; i-- {
		for pair := p.chain[i].Scope.Flags.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value.Short == short {
				return pair.Value, true
			}
		}
	}

	return nil, false
}

func (p *parser) setOption(opt *schema.Option, value string) {
	if !opt.IsList() {
		p.options[opt] = value
		return
	}

	current, _ := p.options[opt].([]string)
	p.options[opt] = append(current, strings.Split(value, opt.Delimiter)...)
}

// toggle returns the value of a flag that is present
func toggle(flag *schema.Flag) int {
	if flag.Default != 0 {
		return 0
	}

	return 1
}

func defaultValue(opt *schema.Option) any {
	switch {
	case opt.Default == nil:
		return nil
	case !opt.IsList():
		return *opt.Default
	case *opt.Default == "":
		return []string{}
	default:
		return strings.Split(*opt.Default, opt.Delimiter)
	}
}

func (p *parser) result() (*Result, error) {
	res := &Result{
		Command: commandOf(p.current().Path),
		Scopes:  make([]ScopeValues, 0, len(p.chain)),
	}

	for i, node := range p.chain {
		scope := node.Scope
		got := p.received[i]
		values := newScopeValues(commandOf(node.Path))

		spare := len(got) - scope.FixedArity()
		if spare < 0 {
			spare = 0
		}
		position := 0
		for pair := scope.Arguments.Oldest(); pair != nil; pair = pair.Next() {
			arg := pair.Value
			count := arg.NumberOfArguments
			if arg.IsVariadic() {
				count = spare
			}
			end := position + count
			if end > len(got) {
				return nil, errs.ErrTooFew.WithArgs(pair.Key, count, max(len(got)-position, 0))
			}
			taken := got[position:end]
			position = end

			if arg.NumberOfArguments == 1 {
				values.Arguments.Set(pair.Key, taken[0])
			} else {
				values.Arguments.Set(pair.Key, append([]string{}, taken...))
			}
		}

		for pair := scope.Options.Oldest(); pair != nil; pair = pair.Next() {
			if v, ok := p.options[pair.Value]; ok {
				values.Options.Set(pair.Key, v)
				continue
			}
			values.Options.Set(pair.Key, defaultValue(pair.Value))
		}

		for pair := scope.Flags.Oldest(); pair != nil; pair = pair.Next() {
			if v, ok := p.flags[pair.Value]; ok {
				values.Flags.Set(pair.Key, v)
				continue
			}
			values.Flags.Set(pair.Key, pair.Value.Default)
		}

		res.Scopes = append(res.Scopes, values)
	}

	return res, nil
}
