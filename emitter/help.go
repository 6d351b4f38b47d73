package emitter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/go-wordwrap"

	"github.com/napalu/grassplain/schema"
)

const (
	helpIndent      = 2
	helpGap         = 2
	helpName        = "help"
	helpShort       = "h"
	helpDescription = "show this help message and exit"
)

// Help is the rendered help of one scope. Usage is the part of the usage line
// following the program name; Body is everything after the usage line.
type Help struct {
	Usage string
	Body  string
}

// Render returns the complete help text for prog
func (h Help) Render(prog string) string {
	usage := "usage: " + prog
	if h.Usage != "" {
		usage += " " + h.Usage
	}

	return usage + "\n" + h.Body
}

type helpEntry struct {
	label       string
	description string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

// HelpAvailability reports whether --help and -h still request help in the
// scope of node, i.e. whether no option or flag on its chain owns them
func HelpAvailability(node *schema.Node) (long bool, short bool) {
	long, short = true, true
	for _, n := range node.Chain() {
		if _, owned := n.Scope.Options.Get(helpName); owned {
			long = false
		}
		for pair := n.Scope.Flags.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Key == helpName {
				long = false
			}
			if pair.Value.Short == helpShort {
				short = false
			}
		}
	}

	return long, short
}

// BuildHelp lays out the help of node. Entries of all sections share one
// description column: the widest label plus a gap, clamped between
// MinDescriptionPadding and MaxDescriptionLength. Labels reaching past the
// column get their description on the next line. Descriptions wrap at
// MaxLineLength, and the root help ends with the extra sections verbatim.
func BuildHelp(cfg *schema.ConfigurationFile, node *schema.Node) Help {
	meta := cfg.Meta
	helpLong, helpShortOK := HelpAvailability(node)

	var sections []helpSection
	if entries := argumentEntries(node.Scope); len(entries) > 0 {
		sections = append(sections, helpSection{title: "arguments:", entries: entries})
	}
	if entries := optionEntries(node.Scope); len(entries) > 0 {
		sections = append(sections, helpSection{title: "options:", entries: entries})
	}
	flags := flagEntries(node.Scope)
	if label := helpLabel(helpLong, helpShortOK); label != "" {
		flags = append(flags, helpEntry{label: label, description: helpDescription})
	}
	if len(flags) > 0 {
		sections = append(sections, helpSection{title: "flags:", entries: flags})
	}
	children := node.Children(cfg)
	if children.Len() > 0 {
		entries := make([]helpEntry, 0, children.Len())
		for pair := children.Oldest(); pair != nil; pair = pair.Next() {
			entries = append(entries, helpEntry{label: pair.Key, description: pair.Value.Description})
		}
		sections = append(sections, helpSection{title: "subcommands:", entries: entries})
	}

	column := descriptionColumn(sections, meta.MinDescriptionPadding, meta.MaxDescriptionLength)
	width := meta.MaxLineLength - column
	if width < 1 {
		width = 1
	}

	var blocks []string
	description := meta.Description
	if !node.IsRoot() {
		description = node.Description()
	}
	if description != "" {
		blocks = append(blocks, strings.Join(wrap(description, meta.MaxLineLength), "\n"))
	}
	for _, section := range sections {
		var sb strings.Builder
		sb.WriteString(section.title)
		for _, entry := range section.entries {
			sb.WriteString("\n")
			writeEntry(&sb, entry, column, width)
		}
		blocks = append(blocks, sb.String())
	}
	if node.IsRoot() && meta.Extra != nil {
		for pair := meta.Extra.Oldest(); pair != nil; pair = pair.Next() {
			blocks = append(blocks, pair.Key+"\n"+strings.TrimRight(pair.Value, "\n"))
		}
	}

	body := ""
	if len(blocks) > 0 {
		body = "\n" + strings.Join(blocks, "\n\n") + "\n"
	}

	return Help{Usage: usageTail(cfg, node, helpLong || helpShortOK), Body: body}
}

func writeEntry(sb *strings.Builder, entry helpEntry, column, width int) {
	label := strings.Repeat(" ", helpIndent) + entry.label
	sb.WriteString(label)
	if entry.description == "" {
		return
	}

	lines := wrap(entry.description, width)
	labelWidth := utf8.RuneCountInString(label)
	if labelWidth+1 > column {
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", column))
	} else {
		sb.WriteString(strings.Repeat(" ", column-labelWidth))
	}
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", column))
		}
		sb.WriteString(line)
	}
}

// wrap breaks text into lines of at most width runes, at spaces where
// possible. Words longer than width are split.
func wrap(text string, width int) []string {
	var lines []string
	for _, line := range strings.Split(wordwrap.WrapString(text, uint(width)), "\n") {
		runes := []rune(line)
		for len(runes) > width {
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		lines = append(lines, string(runes))
	}

	return lines
}

func descriptionColumn(sections []helpSection, minColumn, maxColumn int) int {
	widest := 0
	for _, section := range sections {
		for _, entry := range section.entries {
			if w := utf8.RuneCountInString(entry.label); w > widest {
				widest = w
			}
		}
	}

	column := helpIndent + widest + helpGap
	if column < minColumn {
		column = minColumn
	}
	if column > maxColumn {
		column = maxColumn
	}

	return column
}

func argumentEntries(scope *schema.Scope) []helpEntry {
	entries := make([]helpEntry, 0, scope.Arguments.Len())
	for pair := scope.Arguments.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, helpEntry{
			label:       ArgumentLabel(pair.Key, pair.Value),
			description: pair.Value.Description,
		})
	}

	return entries
}

func optionEntries(scope *schema.Scope) []helpEntry {
	entries := make([]helpEntry, 0, scope.Options.Len())
	for pair := scope.Options.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value
		description := opt.Description
		if opt.Default != nil {
			description += " (default: " + strconv.Quote(*opt.Default) + ")"
		}
		entries = append(entries, helpEntry{label: OptionLabel(pair.Key, opt), description: description})
	}

	return entries
}

func flagEntries(scope *schema.Scope) []helpEntry {
	entries := make([]helpEntry, 0, scope.Flags.Len()+1)
	for pair := scope.Flags.Oldest(); pair != nil; pair = pair.Next() {
		flag := pair.Value
		description := flag.Description
		if flag.Default != 0 {
			description += fmt.Sprintf(" (default: %d)", flag.Default)
		}
		entries = append(entries, helpEntry{label: FlagLabel(pair.Key, flag), description: description})
	}

	return entries
}

// ArgumentLabel renders an argument as shown in help: name, name[n] or name...
func ArgumentLabel(name string, arg *schema.Argument) string {
	switch {
	case arg.IsVariadic():
		return name + "..."
	case arg.NumberOfArguments > 1:
		return fmt.Sprintf("%s[%d]", name, arg.NumberOfArguments)
	default:
		return name
	}
}

// OptionLabel renders an option as shown in help, e.g. --path PATH[,PATH...]
func OptionLabel(name string, opt *schema.Option) string {
	metavar := strcase.ToScreamingSnake(name)
	if opt.IsList() {
		return fmt.Sprintf("--%s %s[%s%s...]", name, metavar, opt.Delimiter, metavar)
	}

	return fmt.Sprintf("--%s %s", name, metavar)
}

// FlagLabel renders a flag as shown in help, e.g. -v, --verbose
func FlagLabel(name string, flag *schema.Flag) string {
	if flag.Short != "" {
		return fmt.Sprintf("-%s, --%s", flag.Short, name)
	}

	return "--" + name
}

func helpLabel(long, short bool) string {
	switch {
	case long && short:
		return "-" + helpShort + ", --" + helpName
	case long:
		return "--" + helpName
	case short:
		return "-" + helpShort
	default:
		return ""
	}
}

func usageTail(cfg *schema.ConfigurationFile, node *schema.Node, helpAvailable bool) string {
	parts := append([]string{}, node.Path...)

	hasOptions := helpAvailable
	for _, n := range node.Chain() {
		if n.Scope.Options.Len() > 0 || n.Scope.Flags.Len() > 0 {
			hasOptions = true
		}
	}
	if hasOptions {
		parts = append(parts, "[options]")
	}

	for pair := node.Scope.Arguments.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.IsVariadic() {
			parts = append(parts, "["+pair.Key+"...]")
			continue
		}
		parts = append(parts, ArgumentLabel(pair.Key, pair.Value))
	}

	if node.Children(cfg).Len() > 0 {
		parts = append(parts, "<subcommand>")
	}

	return strings.Join(parts, " ")
}
