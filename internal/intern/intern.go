// Package intern provides string interning for cyarg.
// Used by the loader for short-flag names and the dash-prefixed tokens
// it splices back into the cursor when decomposing flag bundles.
package intern

import "sync"

// StringInterner provides thread-safe string interning.
type StringInterner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewStringInterner creates a new string interner with optional pre-allocated capacity.
func NewStringInterner(capacity int) *StringInterner {
	if capacity <= 0 {
		capacity = 64
	}
	return &StringInterner{
		strings: make(map[string]string, capacity),
	}
}

// Intern interns a string, returning the canonical version.
func (si *StringInterner) Intern(s string) string {
	// Fast path: read lock for the common case.
	si.mutex.RLock()
	if interned, exists := si.strings[s]; exists {
		si.mutex.RUnlock()
		return interned
	}
	si.mutex.RUnlock()

	si.mutex.Lock()
	defer si.mutex.Unlock()

	// Double-check after acquiring the write lock.
	if interned, exists := si.strings[s]; exists {
		return interned
	}
	si.strings[s] = s
	return s
}

// Stats returns the number of interned strings for monitoring.
func (si *StringInterner) Stats() int {
	si.mutex.RLock()
	defer si.mutex.RUnlock()
	return len(si.strings)
}

// Clear removes all interned strings (useful for testing).
func (si *StringInterner) Clear() {
	si.mutex.Lock()
	defer si.mutex.Unlock()
	for k := range si.strings {
		delete(si.strings, k)
	}
}

// Pre-allocated single character strings for zero-allocation short flag names.
// a-z (0-25), A-Z (26-51), 0-9 (52-61)
var singleCharStrings = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// Pre-allocated dash-prefixed forms of the same characters, used when a
// flag bundle is split and "-X" tokens are spliced back into the cursor.
var dashedCharStrings = [62]string{
	"-a", "-b", "-c", "-d", "-e", "-f", "-g", "-h", "-i", "-j", "-k", "-l", "-m",
	"-n", "-o", "-p", "-q", "-r", "-s", "-t", "-u", "-v", "-w", "-x", "-y", "-z",
	"-A", "-B", "-C", "-D", "-E", "-F", "-G", "-H", "-I", "-J", "-K", "-L", "-M",
	"-N", "-O", "-P", "-Q", "-R", "-S", "-T", "-U", "-V", "-W", "-X", "-Y", "-Z",
	"-0", "-1", "-2", "-3", "-4", "-5", "-6", "-7", "-8", "-9",
}

// singleCharIndex maps an ASCII letter or digit to its table index,
// returning -1 for everything else.
func singleCharIndex(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	case b >= 'A' && b <= 'Z':
		return int(26 + b - 'A')
	case b >= '0' && b <= '9':
		return int(52 + b - '0')
	default:
		return -1
	}
}

// GlobalInterner is the process-wide string interner used for cyarg parsing.
var GlobalInterner = NewStringInterner(128)

// Intern interns a string using the global interner.
func Intern(s string) string {
	return GlobalInterner.Intern(s)
}

// InternByte interns a single byte as a string using pre-allocated
// lookups for ASCII letters and digits.
func InternByte(b byte) string {
	if i := singleCharIndex(b); i >= 0 {
		return singleCharStrings[i]
	}
	return GlobalInterner.Intern(string(rune(b)))
}

// DashedByte returns the "-X" token for a short flag character without
// allocating for ASCII letters and digits.
func DashedByte(b byte) string {
	if i := singleCharIndex(b); i >= 0 {
		return dashedCharStrings[i]
	}
	return GlobalInterner.Intern("-" + string(rune(b)))
}
