package cyarg

// Descriptor describes one logical command-line argument. Exactly one
// of the two identity forms holds: Slot (a 1-based positional slot) or
// Names (one or more synonyms; the first is the canonical output key;
// single-character names are short flags, longer names long flags).
//
// A non-zero Type marks the argument as valued: it consumes a raw
// token and converts it. Named arguments without a converter are
// switches resolving to a boolean; positional arguments without a
// converter resolve to the raw token string.
type Descriptor struct {
	Slot  int
	Names []string

	// Type converts the raw token into the resolved value. Leave zero
	// for switches and string positionals.
	Type Converter

	// DefaultValue is seeded into the output before parsing. nil means
	// no default is declared.
	DefaultValue any

	// IsOptional documents that omission is acceptable. Non-optional
	// valued and positional arguments must be present after the scan.
	IsOptional bool

	// EnvVars are environment variables checked in precedence order
	// when the argument is absent from the token list. The first
	// non-empty value is converted and seeded, overriding the default.
	EnvVars []string

	// Label and Description feed help rendering only.
	Label       string
	Description string
}

// Pos returns a descriptor for the positional argument at the given
// 1-based slot.
func Pos(slot int) *Descriptor {
	return &Descriptor{Slot: slot}
}

// Named returns a descriptor for a named argument. All names are
// synonyms sharing one resolved value; the first is canonical.
func Named(names ...string) *Descriptor {
	return &Descriptor{Names: names}
}

// Convert declares the argument valued, converting its raw token with c.
func (d *Descriptor) Convert(c Converter) *Descriptor {
	d.Type = c
	return d
}

// Default declares a value seeded before parsing.
func (d *Descriptor) Default(v any) *Descriptor {
	d.DefaultValue = v
	return d
}

// Optional marks omission of the argument as acceptable.
func (d *Descriptor) Optional() *Descriptor {
	d.IsOptional = true
	return d
}

// Param sets the help parameter label.
func (d *Descriptor) Param(label string) *Descriptor {
	d.Label = label
	return d
}

// Describe sets the help description.
func (d *Descriptor) Describe(text string) *Descriptor {
	d.Description = text
	return d
}

// FromEnv appends environment variables consulted, in order, when the
// argument is absent from the input.
func (d *Descriptor) FromEnv(vars ...string) *Descriptor {
	d.EnvVars = append(d.EnvVars, vars...)
	return d
}

// positional reports whether the descriptor identifies a positional slot.
func (d *Descriptor) positional() bool { return d.Slot != 0 }

// valued reports whether the descriptor carries a converter.
func (d *Descriptor) valued() bool { return d.Type.defined() }

// isSwitch reports whether the descriptor is a boolean presence flag.
func (d *Descriptor) isSwitch() bool { return !d.positional() && !d.valued() }

// canonical returns the canonical output key: the positional slot, or
// the first synonym name.
func (d *Descriptor) canonical() Key {
	if d.positional() {
		return SlotKey(d.Slot)
	}
	return NameKey(d.Names[0])
}

// keys returns every key the descriptor answers to.
func (d *Descriptor) keys() []Key {
	if d.positional() {
		return []Key{SlotKey(d.Slot)}
	}
	keys := make([]Key, len(d.Names))
	for i, name := range d.Names {
		keys[i] = NameKey(name)
	}
	return keys
}

// displayName returns the user-facing form of the canonical identity:
// "-x" or "--name" for named arguments, "#N" for positional slots.
func (d *Descriptor) displayName() string {
	if d.positional() {
		return d.canonical().String()
	}
	return dashed(d.Names[0])
}

// paramLabel returns the help parameter label: the explicit Label, the
// converter's name, or "string" for converterless positionals.
func (d *Descriptor) paramLabel() string {
	if d.Label != "" {
		return d.Label
	}
	if d.valued() {
		return d.Type.Name()
	}
	if d.positional() {
		return String.Name()
	}
	return ""
}

// dashed prefixes a name with "-" or "--" depending on its length.
func dashed(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

// buildRegistry creates the synonym-aware descriptor registry:
// positional descriptors keyed by slot, named descriptors with every
// synonym registered and mapped to the same descriptor. Schema
// consistency beyond synonym registration is the caller's concern.
func buildRegistry(descs []*Descriptor) *SynMap[*Descriptor] {
	reg := NewSynMap[*Descriptor]()
	for _, d := range descs {
		if !d.positional() && len(d.Names) > 1 {
			reg.Register(d.keys()...)
		}
		reg.Set(d.canonical(), d)
	}
	return reg
}
