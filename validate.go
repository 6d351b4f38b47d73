package grassplain

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/grassplain/document"
	"github.com/napalu/grassplain/errs"
	"github.com/napalu/grassplain/internal/util"
	"github.com/napalu/grassplain/schema"
	"github.com/napalu/grassplain/types"
)

// Document keys, in the order they are suggested
var (
	rootKeys       = []string{"meta", "global", "subcommand", "subcommands"}
	metaKeys       = []string{"description", "max_line_length", "min_description_padding", "max_description_length", "target_language", "extra"}
	scopeKeys      = []string{"arguments", "options", "flags"}
	subcommandKeys = []string{"description", "arguments", "options", "flags", "subcommands"}
	argumentKeys   = []string{"description", "number_of_arguments"}
	optionKeys     = []string{"description", "delimiter", "default"}
	flagKeys       = []string{"description", "short", "default"}
)

// binder maps a document onto the schema, collecting violations in document
// order. Tables are visited key by key, so a violation is recorded when its
// key is reached; required keys are checked on entering their table.
type binder struct {
	allowUnknownKeys bool
	logger           *slog.Logger
	violations       []errs.Violation
}

func (b *binder) fail(path string, err error) {
	b.violations = append(b.violations, errs.Violation{Path: path, Err: err})
}

func (b *binder) err() error {
	if len(b.violations) == 0 {
		return nil
	}

	return &errs.ValidationError{Violations: b.violations}
}

func (b *binder) bindConfiguration(root *document.Node) *schema.ConfigurationFile {
	cfg := schema.NewConfigurationFile()
	if !b.isTable(root, "") {
		return cfg
	}

	subcommandKey := ""
	for pair := root.Fields.Oldest(); pair != nil; pair = pair.Next() {
		key, node := pair.Key, pair.Value
		path := errs.JoinPath("", key)
		switch key {
		case "meta":
			cfg.Meta = b.bindMeta(node, path)
		case "global":
			cfg.Global = b.bindGlobal(node, path)
		case "subcommand", "subcommands":
			if subcommandKey != "" {
				b.fail(path, errs.ErrDuplicateAlias)
				continue
			}
			subcommandKey = key
			b.bindSubcommands(node, path, cfg.Subcommands)
		default:
			b.unknownKey("", key, rootKeys)
		}
	}

	return cfg
}

func (b *binder) bindMeta(node *document.Node, path string) schema.MetaInfo {
	meta := schema.DefaultMeta()
	if !b.isTable(node, path) {
		return meta
	}

	paddingValid, lengthValid := true, true
	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		key, value := pair.Key, pair.Value
		keyPath := errs.JoinPath(path, key)
		switch key {
		case "description":
			if s, ok := b.str(value, keyPath); ok {
				meta.Description = s
			}
		case "max_line_length":
			meta.MaxLineLength, _ = b.positive(value, keyPath, meta.MaxLineLength)
		case "min_description_padding":
			meta.MinDescriptionPadding, paddingValid = b.positive(value, keyPath, meta.MinDescriptionPadding)
		case "max_description_length":
			meta.MaxDescriptionLength, lengthValid = b.positive(value, keyPath, meta.MaxDescriptionLength)
		case "target_language":
			s, ok := b.str(value, keyPath)
			if !ok {
				continue
			}
			lang, ok := types.ParseTargetLanguage(s)
			if !ok {
				b.fail(keyPath, errs.ErrUnknownTarget.WithArgs(s, types.TargetLanguageNames()))
				continue
			}
			meta.TargetLanguage = lang
		case "extra":
			meta.Extra = b.bindExtra(value, keyPath)
		default:
			b.unknownKey(path, key, metaKeys)
		}
	}

	if paddingValid && lengthValid && meta.MinDescriptionPadding > meta.MaxDescriptionLength {
		b.fail(errs.JoinPath(path, "min_description_padding"),
			errs.ErrPaddingExceeds.WithArgs(meta.MinDescriptionPadding, meta.MaxDescriptionLength))
	}

	return meta
}

func (b *binder) bindExtra(node *document.Node, path string) *orderedmap.OrderedMap[string, string] {
	extra := orderedmap.New[string, string]()
	if !b.isTable(node, path) {
		return extra
	}

	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		if body, ok := b.str(pair.Value, errs.JoinPath(path, pair.Key)); ok {
			extra.Set(pair.Key, body)
		}
	}

	return extra
}

func (b *binder) bindGlobal(node *document.Node, path string) schema.Scope {
	scope := schema.NewScope()
	if !b.isTable(node, path) {
		return scope
	}

	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		if !b.bindScopeEntry(&scope, pair.Key, pair.Value, errs.JoinPath(path, pair.Key)) {
			b.unknownKey(path, pair.Key, scopeKeys)
		}
	}

	return scope
}

// bindScopeEntry binds the arguments, options and flags tables of a scope and
// reports whether key was one of them
func (b *binder) bindScopeEntry(scope *schema.Scope, key string, node *document.Node, path string) bool {
	switch key {
	case "arguments":
		b.bindArguments(node, path, scope)
	case "options":
		b.bindOptions(node, path, scope)
	case "flags":
		b.bindFlags(node, path, scope)
	default:
		return false
	}

	return true
}

func (b *binder) bindSubcommands(node *document.Node, path string, into *orderedmap.OrderedMap[string, *schema.Subcommand]) {
	if !b.isTable(node, path) {
		return
	}

	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		namePath := errs.JoinPath(path, name)
		b.checkName(name, namePath)
		if sub := b.bindSubcommand(pair.Value, namePath); sub != nil {
			into.Set(name, sub)
		}
	}
}

func (b *binder) bindSubcommand(node *document.Node, path string) *schema.Subcommand {
	if !b.isTable(node, path) {
		return nil
	}

	sub := schema.NewSubcommand("")
	b.requireDescription(node, path)
	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		key, value := pair.Key, pair.Value
		keyPath := errs.JoinPath(path, key)
		switch key {
		case "description":
			sub.Description, _ = b.description(value, keyPath)
		case "subcommands":
			b.bindSubcommands(value, keyPath, sub.Subcommands)
		default:
			if !b.bindScopeEntry(&sub.Scope, key, value, keyPath) {
				b.unknownKey(path, key, subcommandKeys)
			}
		}
	}

	return sub
}

func (b *binder) bindArguments(node *document.Node, path string, scope *schema.Scope) {
	if !b.isTable(node, path) {
		return
	}

	variadic := ""
	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		namePath := errs.JoinPath(path, name)
		b.checkName(name, namePath)

		arg := b.bindArgument(pair.Value, namePath)
		if arg == nil {
			continue
		}
		if arg.IsVariadic() {
			if variadic != "" {
				b.fail(errs.JoinPath(namePath, "number_of_arguments"), errs.ErrMultipleVariadic.WithArgs(variadic))
			} else {
				variadic = name
			}
		}
		scope.Arguments.Set(name, arg)
	}
}

func (b *binder) bindArgument(node *document.Node, path string) *schema.Argument {
	if !b.isTable(node, path) {
		return nil
	}

	arg := schema.NewArgument("")
	b.requireDescription(node, path)
	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		key, value := pair.Key, pair.Value
		keyPath := errs.JoinPath(path, key)
		switch key {
		case "description":
			arg.Description, _ = b.description(value, keyPath)
		case "number_of_arguments":
			n, ok := b.integer(value, keyPath)
			switch {
			case !ok:
			case n == 0:
				b.fail(keyPath, errs.ErrZeroArity)
			case n < 0:
				arg.NumberOfArguments = types.Unlimited
			default:
				arg.NumberOfArguments = n
			}
		default:
			b.unknownKey(path, key, argumentKeys)
		}
	}

	return arg
}

func (b *binder) bindOptions(node *document.Node, path string, scope *schema.Scope) {
	if !b.isTable(node, path) {
		return
	}

	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		namePath := errs.JoinPath(path, pair.Key)
		b.checkName(pair.Key, namePath)
		if opt := b.bindOption(pair.Value, namePath); opt != nil {
			scope.Options.Set(pair.Key, opt)
		}
	}
}

func (b *binder) bindOption(node *document.Node, path string) *schema.Option {
	if !b.isTable(node, path) {
		return nil
	}

	opt := schema.NewOption("")
	b.requireDescription(node, path)
	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		key, value := pair.Key, pair.Value
		keyPath := errs.JoinPath(path, key)
		switch key {
		case "description":
			opt.Description, _ = b.description(value, keyPath)
		case "delimiter":
			if s, ok := b.str(value, keyPath); ok {
				opt.Delimiter = s
			}
		case "default":
			if s, ok := b.str(value, keyPath); ok {
				opt.Default = schema.StringPtr(s)
			}
		default:
			b.unknownKey(path, key, optionKeys)
		}
	}

	return opt
}

func (b *binder) bindFlags(node *document.Node, path string, scope *schema.Scope) {
	if !b.isTable(node, path) {
		return
	}

	shorts := make(map[string]string)
	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		namePath := errs.JoinPath(path, name)
		b.checkName(name, namePath)

		flag := b.bindFlag(pair.Value, namePath)
		if flag == nil {
			continue
		}
		if flag.Short != "" {
			if owner, taken := shorts[flag.Short]; taken {
				b.fail(errs.JoinPath(namePath, "short"), errs.ErrShortConflict.WithArgs(flag.Short, owner))
			} else {
				shorts[flag.Short] = name
			}
		}
		scope.Flags.Set(name, flag)
	}
}

func (b *binder) bindFlag(node *document.Node, path string) *schema.Flag {
	if !b.isTable(node, path) {
		return nil
	}

	flag := schema.NewFlag("")
	b.requireDescription(node, path)
	for pair := node.Fields.Oldest(); pair != nil; pair = pair.Next() {
		key, value := pair.Key, pair.Value
		keyPath := errs.JoinPath(path, key)
		switch key {
		case "description":
			flag.Description, _ = b.description(value, keyPath)
		case "short":
			s, ok := b.str(value, keyPath)
			switch {
			case !ok || s == "":
			case utf8.RuneCountInString(s) != 1:
				b.fail(keyPath, errs.ErrShortLength.WithArgs(s))
			case !validName(s):
				b.fail(keyPath, errs.ErrInvalidName.WithArgs(s))
			default:
				flag.Short = s
			}
		case "default":
			if n, ok := b.integer(value, keyPath); ok {
				flag.Default = n
			}
		default:
			b.unknownKey(path, key, flagKeys)
		}
	}

	return flag
}

func (b *binder) requireDescription(node *document.Node, path string) {
	if _, ok := node.Get("description"); !ok {
		b.fail(errs.JoinPath(path, "description"), errs.ErrRequired)
	}
}

func (b *binder) description(node *document.Node, path string) (string, bool) {
	s, ok := b.str(node, path)
	if !ok {
		return "", false
	}
	if strings.TrimSpace(s) == "" {
		b.fail(path, errs.ErrEmptyDescription)
		return "", false
	}

	return s, true
}

func (b *binder) checkName(name, path string) {
	if !validName(name) {
		b.fail(path, errs.ErrInvalidName.WithArgs(name))
	}
}

func (b *binder) unknownKey(path, key string, known []string) {
	if b.allowUnknownKeys {
		b.logger.Debug("ignoring unknown key", "path", errs.JoinPath(path, key))
		return
	}

	if suggestion, ok := util.Suggest(key, known, util.DefaultSuggestionThreshold); ok {
		b.fail(path, errs.ErrUnknownKeySuggest.WithArgs(key, suggestion))
		return
	}
	b.fail(path, errs.ErrUnknownKey.WithArgs(key))
}

func (b *binder) isTable(node *document.Node, path string) bool {
	if node.Kind != document.Table {
		b.fail(path, errs.ErrExpectedTable.WithArgs(node.Describe()))
		return false
	}

	return true
}

func (b *binder) str(node *document.Node, path string) (string, bool) {
	if node.Kind != document.String {
		b.fail(path, errs.ErrExpectedString.WithArgs(node.Describe()))
		return "", false
	}

	return node.Value.(string), true
}

// integer accepts integers, integral floats, booleans and base-10 strings
func (b *binder) integer(node *document.Node, path string) (int, bool) {
	switch node.Kind {
	case document.Integer:
		i := node.Value.(int64)
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return int(i), true
		}
	case document.Float:
		f := node.Value.(float64)
		if f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
			return int(f), true
		}
	case document.Bool:
		if node.Value.(bool) {
			return 1, true
		}
		return 0, true
	case document.String:
		if i, err := strconv.ParseInt(node.Value.(string), 10, 32); err == nil {
			return int(i), true
		}
	}

	b.fail(path, errs.ErrExpectedInteger.WithArgs(node.Describe()))
	return 0, false
}

// positive returns fallback when node is not a positive integer
func (b *binder) positive(node *document.Node, path string, fallback int) (int, bool) {
	n, ok := b.integer(node, path)
	if !ok {
		return fallback, false
	}
	if n <= 0 {
		b.fail(path, errs.ErrNotPositive.WithArgs(n))
		return fallback, false
	}

	return n, true
}

func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") {
		return false
	}

	return strings.IndexFunc(name, unicode.IsSpace) < 0
}
