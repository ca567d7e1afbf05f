package cyarg

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/bauersmatthew/cyarg/internal/fuzzy"
	"github.com/bauersmatthew/cyarg/internal/intern"
)

// suggestionMaxDistance bounds the edit distance for the "closest
// known name" attached to unknown-argument errors.
const suggestionMaxDistance = 2

// loader is the parsing state machine. It drains the token cursor one
// decision at a time, classifying each token as positional, short-flag
// or long-flag, consulting the registry, converting, and writing into
// the synonym-aware output accumulator. A fresh loader is built per
// parse call; nothing escapes it but the final snapshot.
type loader struct {
	cursor *tokenCursor
	descs  []*Descriptor
	reg    *SynMap[*Descriptor]
	out    *SynMap[any]

	// pos is the current positional slot, 1-based. It advances only
	// when a positional token resolves, independent of how many named
	// tokens were consumed in between.
	pos int
}

// newLoader builds the registry, seeds the output accumulator and
// wraps args in a cursor.
func newLoader(descs []*Descriptor, args []string) *loader {
	return &loader{
		cursor: newTokenCursor(args),
		descs:  descs,
		reg:    buildRegistry(descs),
		out:    seedOutput(descs),
		pos:    1,
	}
}

// seedOutput creates the output accumulator with synonyms registered
// and pre-parse values in place: environment variables win over
// declared defaults, and switches with neither seed false. Input
// tokens later overwrite any seed.
func seedOutput(descs []*Descriptor) *SynMap[any] {
	out := NewSynMap[any]()
	for _, d := range descs {
		if !d.positional() && len(d.Names) > 1 {
			out.Register(d.keys()...)
		}

		if env, ok := envValue(d); ok {
			out.Set(d.canonical(), env)
			continue
		}
		if d.DefaultValue != nil {
			out.Set(d.canonical(), d.DefaultValue)
			continue
		}
		if d.isSwitch() {
			out.Set(d.canonical(), false)
		}
	}
	return out
}

// envValue resolves the first non-empty environment variable declared
// on the descriptor. Values that fail conversion are skipped.
func envValue(d *Descriptor) (any, bool) {
	for _, name := range d.EnvVars {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		if d.isSwitch() {
			v, _ := Bool.Convert(raw)
			return v, true
		}
		if !d.valued() {
			return raw, true
		}
		if v, err := d.Type.Convert(raw); err == nil {
			return v, true
		}
	}
	return nil, false
}

// loadAll drains the cursor, runs the post-scan completeness check and
// returns the accumulator's snapshot.
func (l *loader) loadAll() (Result, error) {
	for l.cursor.HasNext() {
		if err := l.loadOne(); err != nil {
			return nil, err
		}
	}
	if err := l.checkRequired(); err != nil {
		return nil, err
	}
	return Result(l.out.Snapshot()), nil
}

// loadOne classifies and resolves the next token. Single-character
// tokens, tokens without a leading dash, and the bare "--" are all
// positional; "-X..." is a short-flag form; "--name" a long-flag form.
func (l *loader) loadOne() error {
	cur, _ := l.cursor.Next()

	switch {
	case len(cur) <= 1 || cur == "--" || cur[0] != '-':
		return l.loadPositional(cur)
	case cur[1] != '-':
		return l.loadShort(cur)
	default:
		return l.loadLong(cur)
	}
}

// loadPositional resolves a token against the current positional slot
// and advances the counter.
func (l *loader) loadPositional(cur string) error {
	key := SlotKey(l.pos)
	desc, err := l.recognize(key, key.String())
	if err != nil {
		return err
	}

	val, err := l.translate(cur, desc, key.String())
	if err != nil {
		return err
	}

	l.out.Set(key, val)
	l.pos++
	return nil
}

// loadShort resolves a -X token. The first character after the dash is
// the flag in focus; any remaining characters are either the flag's
// inline value (valued flag) or further bundled switches. Both cases
// are handled by splicing derived tokens back in front of the cursor
// so the main loop re-classifies them; each splice strictly shortens
// the unresolved remainder, so the rewrite terminates.
func (l *loader) loadShort(cur string) error {
	body := cur[1:]
	name, display, size := shortFocus(body)

	desc, err := l.recognize(NameKey(name), display)
	if err != nil {
		return err
	}

	single := len(body) == size
	if desc.valued() {
		if single {
			raw, grabErr := l.grabNext(display)
			if grabErr != nil {
				return grabErr
			}
			val, convErr := l.translate(raw, desc, display)
			if convErr != nil {
				return convErr
			}
			l.out.Set(NameKey(name), val)
			return nil
		}
		// -ovalue: re-present as "-o value" and let the next two
		// iterations resolve the grab.
		l.cursor.InsertAhead(display, body[size:])
		return nil
	}

	if single {
		l.out.Set(NameKey(name), true)
		return nil
	}
	// -abc: peel off the focus switch and re-present the rest as its
	// own bundle.
	l.cursor.InsertAhead(display, "-"+body[size:])
	return nil
}

// shortFocus extracts the flag in focus from a short-form body: its
// name, its "-X" display form and its byte width. ASCII letters and
// digits take the pre-allocated intern tables; anything else is
// decoded as one rune so multi-byte flag names stay intact.
func shortFocus(body string) (name, display string, size int) {
	if body[0] < utf8.RuneSelf {
		return intern.InternByte(body[0]), intern.DashedByte(body[0]), 1
	}
	r, size := utf8.DecodeRuneInString(body)
	name = intern.Intern(string(r))
	return name, intern.Intern("-" + name), size
}

// loadLong resolves a --name token.
func (l *loader) loadLong(cur string) error {
	name := cur[2:]
	display := "--" + name

	desc, err := l.recognize(NameKey(name), display)
	if err != nil {
		return err
	}

	if !desc.valued() {
		l.out.Set(NameKey(name), true)
		return nil
	}

	raw, err := l.grabNext(display)
	if err != nil {
		return err
	}
	val, err := l.translate(raw, desc, display)
	if err != nil {
		return err
	}
	l.out.Set(NameKey(name), val)
	return nil
}

// recognize looks up a descriptor, failing with an unknown-argument
// error carrying the closest registered name as a suggestion.
func (l *loader) recognize(key Key, display string) (*Descriptor, error) {
	desc, ok := l.reg.Get(key)
	if ok {
		return desc, nil
	}

	err := &ParseError{
		Type:    ErrorTypeUnknownArgument,
		Message: "unknown argument: " + display,
		Arg:     display,
	}
	if !key.IsSlot() {
		err.Suggestion = fuzzy.FindBestName(key.Name(), descriptorNames(l.descs), suggestionMaxDistance)
	}
	return nil, err
}

// translate applies the descriptor's converter to a raw token, or
// passes the token through when no converter is declared.
func (l *loader) translate(raw string, desc *Descriptor, display string) (any, error) {
	if !desc.valued() {
		return raw, nil
	}

	val, err := desc.Type.Convert(raw)
	if err != nil {
		return nil, &ParseError{
			Type:    ErrorTypeInvalidValue,
			Message: fmt.Sprintf("invalid value %q for argument %s: %v", raw, display, err),
			Arg:     display,
			Value:   raw,
		}
	}
	return val, nil
}

// grabNext pulls the value token for a valued flag.
func (l *loader) grabNext(display string) (string, error) {
	if tok, ok := l.cursor.Next(); ok {
		return tok, nil
	}
	return "", &ParseError{
		Type:    ErrorTypeMissingValue,
		Message: "missing value for argument " + display,
		Arg:     display,
	}
}

// checkRequired fails when a non-optional valued or positional
// argument has no resolved value after the scan. Switches are always
// seeded and never missing.
func (l *loader) checkRequired() error {
	for _, d := range l.descs {
		if d.IsOptional || d.isSwitch() {
			continue
		}
		if !l.out.Has(d.canonical()) {
			return &ParseError{
				Type:    ErrorTypeMissingRequired,
				Message: "missing required argument: " + d.displayName(),
				Arg:     d.displayName(),
			}
		}
	}
	return nil
}

// release returns pooled resources. The loader must not be used after.
func (l *loader) release() {
	l.cursor.release()
}
