package cyarg

import (
	"io"
	"os"
	"strings"
)

// Help layout constants: argument forms are right-justified in a
// 20-column gutter, descriptions are wrapped to the remainder of a
// 70-column line.
const (
	helpNameWidth = 20
	helpGutter    = 4
	helpWrapWidth = 70 - helpNameWidth - helpGutter
)

// HelpInfo carries the program identity shown in rendered help.
type HelpInfo struct {
	Name        string
	Description string
}

// PrintHelp writes the rendered help message to stdout.
func PrintHelp(info HelpInfo, descs []*Descriptor) {
	WriteHelp(os.Stdout, info, descs)
}

// WriteHelp writes the rendered help message to w.
func WriteHelp(w io.Writer, info HelpInfo, descs []*Descriptor) {
	_, _ = io.WriteString(w, HelpString(info, descs))
}

// HelpString renders a usage line followed by a per-argument option
// listing with word-wrapped descriptions. It consumes the descriptor
// list read-only and has no dependency on parsing state.
func HelpString(info HelpInfo, descs []*Descriptor) string {
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(info.Name)
	writeUsageArgs(&b, descs)
	b.WriteString("\n\n")
	if info.Description != "" {
		b.WriteString(info.Description)
		b.WriteString("\n\n")
	}

	b.WriteString("Options:\n")
	for _, d := range descs {
		writeOption(&b, d)
	}

	return b.String()
}

// writeUsageArgs appends the argument summary to the usage line:
// "[options]" when any optional named argument exists, "<-x PARAM>"
// for each required named argument, then one "<PARAM>" or "[PARAM]"
// per positional argument.
func writeUsageArgs(b *strings.Builder, descs []*Descriptor) {
	var positionals, required []*Descriptor
	hasOptionalNamed := false
	for _, d := range descs {
		switch {
		case d.positional():
			positionals = append(positionals, d)
		case d.IsOptional || d.isSwitch():
			hasOptionalNamed = true
		default:
			required = append(required, d)
		}
	}

	if hasOptionalNamed {
		b.WriteString(" [options]")
	}
	for _, d := range required {
		b.WriteString(" <")
		b.WriteString(dashed(d.Names[0]))
		if label := d.paramLabel(); d.valued() && label != "" {
			b.WriteString(" ")
			b.WriteString(label)
		}
		b.WriteString(">")
	}
	for _, d := range positionals {
		left, right := "<", ">"
		if d.IsOptional {
			left, right = "[", "]"
		}
		b.WriteString(" ")
		b.WriteString(left)
		b.WriteString(d.paramLabel())
		b.WriteString(right)
	}
}

// writeOption appends one option-listing entry. Synonyms other than
// the last are listed on their own lines; the last carries the
// parameter label for valued arguments.
func writeOption(b *strings.Builder, d *Descriptor) {
	var name string
	if d.positional() {
		name = d.paramLabel()
	} else {
		for _, alt := range d.Names[:len(d.Names)-1] {
			b.WriteString(rjust(dashed(alt), helpNameWidth))
			b.WriteString("\n")
		}
		name = dashed(d.Names[len(d.Names)-1])
		if d.valued() {
			name += " " + d.paramLabel()
		}
	}

	b.WriteString(rjust(name, helpNameWidth))
	b.WriteString(strings.Repeat(" ", helpGutter))

	if d.Description == "" {
		b.WriteString("\n")
	} else {
		lines := wrapText(d.Description, helpWrapWidth)
		b.WriteString(lines[0])
		b.WriteString("\n")
		for _, line := range lines[1:] {
			b.WriteString(strings.Repeat(" ", helpNameWidth+helpGutter))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

// rjust right-justifies s in a field of the given width. Strings wider
// than the field are returned unchanged.
func rjust(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// wrapText greedily wraps text into lines of at most width characters,
// breaking on spaces. Words longer than width get a line of their own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 2)
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) <= width {
			line += " " + word
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}
