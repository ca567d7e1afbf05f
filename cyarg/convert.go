package cyarg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Converter is a named conversion capability from a raw token string
// to a typed value. The name doubles as the help parameter label when
// a descriptor declares no explicit Param.
type Converter struct {
	name string
	fn   func(string) (any, error)
}

// NewConverter creates a converter from a name and conversion function.
func NewConverter(name string, fn func(string) (any, error)) Converter {
	return Converter{name: name, fn: fn}
}

// Typed adapts a strongly-typed conversion function into a Converter.
func Typed[T any](name string, fn func(string) (T, error)) Converter {
	return Converter{
		name: name,
		fn: func(s string) (any, error) {
			return fn(s)
		},
	}
}

// Name returns the converter's name.
func (c Converter) Name() string { return c.name }

// Convert applies the converter to a raw token.
func (c Converter) Convert(s string) (any, error) {
	return c.fn(s)
}

// defined reports whether the converter carries a conversion function.
// The zero Converter marks a descriptor as a switch or raw positional.
func (c Converter) defined() bool { return c.fn != nil }

// Built-in converters.
var (
	// String is the identity converter.
	String = Typed("string", func(s string) (string, error) {
		return s, nil
	})

	// Int parses integers; base 0 keeps hex input (0x...) transparent.
	Int = Typed("int", func(s string) (int, error) {
		v, err := strconv.ParseInt(s, 0, strconv.IntSize)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %s", s)
		}
		return int(v), nil
	})

	// Float parses float64 values.
	Float = Typed("float64", func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %s", s)
		}
		return v, nil
	})

	// Bool treats "1", "t" and "true" (any case) as true and
	// everything else as false. It never fails.
	Bool = Typed("bool", func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "1", "t", "true":
			return true, nil
		}
		return false, nil
	})

	// Duration parses standard Go durations plus MM:SS, HH:MM:SS,
	// calendar suffixes (1d, 1w, 1M, 1Y) and spaced units ("3 sec").
	Duration = Typed("duration", parseDuration)
)

// Enum returns a converter restricted to a fixed set of string values.
func Enum(values ...string) Converter {
	name := strings.Join(values, "|")
	return Typed(name, func(s string) (string, error) {
		for _, v := range values {
			if s == v {
				return s, nil
			}
		}
		return "", fmt.Errorf("not one of %s: %s", name, s)
	})
}

// File returns a converter for file paths. With mustExist the path
// must name an existing regular file.
func File(mustExist bool) Converter {
	return Typed("file", func(path string) (string, error) {
		if path == "" {
			return "", fmt.Errorf("file path cannot be empty")
		}
		if mustExist {
			info, err := os.Stat(path)
			if os.IsNotExist(err) {
				return "", fmt.Errorf("file does not exist: %s", path)
			} else if err != nil {
				return "", fmt.Errorf("cannot access file %s: %v", path, err)
			} else if info.IsDir() {
				return "", fmt.Errorf("path is a directory: %s", path)
			}
		}
		return path, nil
	})
}

// Dir returns a converter for directory paths. With mustExist the path
// must name an existing directory.
func Dir(mustExist bool) Converter {
	return Typed("dir", func(path string) (string, error) {
		if path == "" {
			return "", fmt.Errorf("directory path cannot be empty")
		}
		if mustExist {
			info, err := os.Stat(path)
			if os.IsNotExist(err) {
				return "", fmt.Errorf("directory does not exist: %s", path)
			} else if err != nil {
				return "", fmt.Errorf("cannot access directory %s: %v", path, err)
			} else if !info.IsDir() {
				return "", fmt.Errorf("path is not a directory: %s", path)
			}
		}
		return path, nil
	})
}

// parseDuration parses durations in several shapes:
//
//	"00:30"      -> 30s           (MM:SS)
//	"01:30:15"   -> 1h30m15s      (HH:MM:SS)
//	"1d" "2w"    -> calendar days and weeks
//	"1M" "1Y"    -> 30-day months, 365-day years
//	"1h30m15s"   -> standard Go format
//	"3 sec"      -> spelled-out units
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if strings.Contains(s, ":") {
		return parseColonDuration(s)
	}

	if d, ok := parseCalendarDuration(s); ok {
		return d, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	return parseSpacedDuration(s)
}

// parseColonDuration parses "MM:SS" or "HH:MM:SS".
func parseColonDuration(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("too many colons: %s", s)
	}

	units := []time.Duration{time.Second, time.Minute, time.Hour}
	var total time.Duration
	for i := len(parts) - 1; i >= 0; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		total += time.Duration(n) * units[len(parts)-1-i]
	}
	return total, nil
}

// parseCalendarDuration handles the "1d", "1w", "1M", "1Y" suffixes.
// Lowercase m stays with the standard parser (minutes).
func parseCalendarDuration(s string) (time.Duration, bool) {
	if len(s) < 2 {
		return 0, false
	}

	var multiplier time.Duration
	switch s[len(s)-1] {
	case 'd', 'D':
		multiplier = 24 * time.Hour
	case 'w', 'W':
		multiplier = 7 * 24 * time.Hour
	case 'M':
		multiplier = 30 * 24 * time.Hour // 1 month = 30 days
	case 'y', 'Y':
		multiplier = 365 * 24 * time.Hour // 1 year = 365 days
	default:
		return 0, false
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, false
	}
	return time.Duration(n) * multiplier, true
}

// spacedUnits maps spelled-out unit words to durations.
var spacedUnits = map[string]time.Duration{
	"ns": time.Nanosecond,
	"us": time.Microsecond, "μs": time.Microsecond,
	"ms":  time.Millisecond,
	"s":   time.Second,
	"sec": time.Second, "second": time.Second, "seconds": time.Second,
	"m":   time.Minute,
	"min": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h":    time.Hour,
	"hour": time.Hour, "hours": time.Hour,
	"d":   24 * time.Hour,
	"day": 24 * time.Hour, "days": 24 * time.Hour,
	"w":    7 * 24 * time.Hour,
	"week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
}

// parseSpacedDuration parses "3 sec", "1 hour 30 minutes" style input:
// alternating number and unit-word fields.
func parseSpacedDuration(s string) (time.Duration, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	var total time.Duration
	for i := 0; i < len(fields); i += 2 {
		n, err := strconv.Atoi(fields[i])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		unit, ok := spacedUnits[strings.ToLower(fields[i+1])]
		if !ok {
			return 0, fmt.Errorf("invalid duration unit: %s", fields[i+1])
		}
		total += time.Duration(n) * unit
	}
	return total, nil
}
