package cyarg

import (
	"fmt"
	"sort"
)

// RenderTokens builds a token list that, parsed against the same
// descriptor list, reproduces the given values. Named arguments come
// first in descriptor order (switches only when true), positional
// arguments follow in slot order. Values are rendered with their
// natural string form, so the round trip holds for converters whose
// string form parses back to the same value.
func RenderTokens(descs []*Descriptor, values map[Key]any) []string {
	tokens := make([]string, 0, 2*len(values))

	for _, d := range descs {
		if d.positional() {
			continue
		}
		v, ok := values[d.canonical()]
		if !ok {
			continue
		}
		if d.isSwitch() {
			if on, _ := v.(bool); on {
				tokens = append(tokens, dashed(d.Names[0]))
			}
			continue
		}
		tokens = append(tokens, dashed(d.Names[0]), renderValue(v))
	}

	slots := make([]int, 0, len(values))
	for k := range values {
		if k.IsSlot() {
			slots = append(slots, k.Slot())
		}
	}
	sort.Ints(slots)
	for _, slot := range slots {
		tokens = append(tokens, renderValue(values[SlotKey(slot)]))
	}

	return tokens
}

// renderValue formats a resolved value as a single token.
func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
