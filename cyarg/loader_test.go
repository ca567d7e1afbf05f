package cyarg

import (
	"errors"
	"testing"
)

// TestSwitchPresence tests boolean switch resolution and false seeding
func TestSwitchPresence(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"a"}},
	}

	result, err := ProcessArgs(descs, []string{"-a"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !result.GetBool("a") {
		t.Error("expected a=true when switch is present")
	}

	result, err = ProcessArgs(descs, []string{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	v, ok := result.Get("a")
	if !ok {
		t.Fatal("expected a to be seeded")
	}
	if v != false {
		t.Errorf("expected a=false when switch is absent, got %v", v)
	}
}

// TestSwitchDeclaredDefault tests that a declared default wins over false seeding
func TestSwitchDeclaredDefault(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"color"}, DefaultValue: true},
	}

	result, err := ProcessArgs(descs, []string{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !result.GetBool("color") {
		t.Error("expected color=true from declared default")
	}
}

// TestValuedShortFlag tests -o val and the inline -oval form
func TestValuedShortFlag(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"o"}, Type: String},
	}

	for _, args := range [][]string{
		{"-o", "val"},
		{"-oval"},
	} {
		t.Run(args[0], func(t *testing.T) {
			result, err := ProcessArgs(descs, args)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if got, _ := result.GetString("o"); got != "val" {
				t.Errorf("expected o=%q, got %q", "val", got)
			}
		})
	}
}

// TestBundledSwitches tests -abc decomposition into independent switches
func TestBundledSwitches(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"a"}},
		{Names: []string{"b"}},
		{Names: []string{"c"}},
	}

	result, err := ProcessArgs(descs, []string{"-abc"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, name := range []string{"a", "b", "c"} {
		if !result.GetBool(name) {
			t.Errorf("expected %s=true from bundle", name)
		}
	}
}

// TestBundleEndingInValuedFlag tests a valued flag appearing after
// bundled switches, consuming the next token as its value
func TestBundleEndingInValuedFlag(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"v"}},
		{Names: []string{"o"}, Type: String},
	}

	result, err := ProcessArgs(descs, []string{"-vo", "out.txt"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !result.GetBool("v") {
		t.Error("expected v=true")
	}
	if got, _ := result.GetString("o"); got != "out.txt" {
		t.Errorf("expected o=%q, got %q", "out.txt", got)
	}
}

// TestBundleValuedFlagInlineRemainder tests a valued flag mid-bundle
// taking the bundle remainder as its value
func TestBundleValuedFlagInlineRemainder(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"v"}},
		{Names: []string{"o"}, Type: String},
	}

	result, err := ProcessArgs(descs, []string{"-vofile"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !result.GetBool("v") {
		t.Error("expected v=true")
	}
	if got, _ := result.GetString("o"); got != "file" {
		t.Errorf("expected o=%q, got %q", "file", got)
	}
}

// TestPositionalBasic tests two positional slots resolved in order
func TestPositionalBasic(t *testing.T) {
	descs := []*Descriptor{
		{Slot: 1},
		{Slot: 2},
	}

	result, err := ProcessArgs(descs, []string{"x", "y"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.PosString(1); got != "x" {
		t.Errorf("expected slot 1 = %q, got %q", "x", got)
	}
	if got, _ := result.PosString(2); got != "y" {
		t.Errorf("expected slot 2 = %q, got %q", "y", got)
	}
}

// TestPositionalCountingInterleaved tests that the positional counter
// is independent of named tokens consumed in between
func TestPositionalCountingInterleaved(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"v"}},
		{Names: []string{"o"}, Type: String},
		{Slot: 1},
		{Slot: 2},
	}

	result, err := ProcessArgs(descs, []string{"first", "-v", "-o", "out", "second"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.PosString(1); got != "first" {
		t.Errorf("expected slot 1 = %q, got %q", "first", got)
	}
	if got, _ := result.PosString(2); got != "second" {
		t.Errorf("expected slot 2 = %q, got %q", "second", got)
	}
}

// TestDashTokensArePositional tests that "-", "--" and single
// characters resolve as positional tokens
func TestDashTokensArePositional(t *testing.T) {
	descs := []*Descriptor{
		{Slot: 1},
		{Slot: 2},
		{Slot: 3},
	}

	result, err := ProcessArgs(descs, []string{"-", "--", "x"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.PosString(1); got != "-" {
		t.Errorf("expected slot 1 = %q, got %q", "-", got)
	}
	if got, _ := result.PosString(2); got != "--" {
		t.Errorf("expected slot 2 = %q, got %q", "--", got)
	}
	if got, _ := result.PosString(3); got != "x" {
		t.Errorf("expected slot 3 = %q, got %q", "x", got)
	}
}

// TestPositionalConverter tests typed positional arguments
func TestPositionalConverter(t *testing.T) {
	descs := []*Descriptor{
		{Slot: 1, Type: Int},
	}

	result, err := ProcessArgs(descs, []string{"42"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if v, _ := result.Pos(1); v != 42 {
		t.Errorf("expected slot 1 = 42, got %v", v)
	}
}

// TestLongFlags tests --name switch and valued forms
func TestLongFlags(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"verbose"}},
		{Names: []string{"out"}, Type: String},
	}

	result, err := ProcessArgs(descs, []string{"--verbose", "--out", "file.txt"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !result.GetBool("verbose") {
		t.Error("expected verbose=true")
	}
	if got, _ := result.GetString("out"); got != "file.txt" {
		t.Errorf("expected out=%q, got %q", "file.txt", got)
	}
}

// TestSynonymsShareValue tests that short and long synonyms resolve to
// one shared value observable through every name
func TestSynonymsShareValue(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"a", "all"}},
		{Names: []string{"o", "out"}, Type: String, IsOptional: true},
	}

	result, err := ProcessArgs(descs, []string{"--all", "-o", "x"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !result.GetBool("a") || !result.GetBool("all") {
		t.Error("expected a and all to both read true")
	}
	for _, name := range []string{"o", "out"} {
		if got, _ := result.GetString(name); got != "x" {
			t.Errorf("expected %s=%q, got %q", name, "x", got)
		}
	}
}

// TestUnknownFlag tests the unknown-argument error for named flags
func TestUnknownFlag(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"verbose"}},
	}

	for _, args := range [][]string{
		{"--bogus"},
		{"-x"},
	} {
		_, err := ProcessArgs(descs, args)
		if err == nil {
			t.Fatalf("expected error for %v", args)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %T", err)
		}
		if parseErr.Type != ErrorTypeUnknownArgument {
			t.Errorf("expected ErrorTypeUnknownArgument, got %s", parseErr.Type)
		}
		if parseErr.Arg != args[0] {
			t.Errorf("expected Arg=%q, got %q", args[0], parseErr.Arg)
		}
	}
}

// TestUnknownPositionalSlot tests the unknown-argument error for an
// extra positional token with no descriptor
func TestUnknownPositionalSlot(t *testing.T) {
	descs := []*Descriptor{
		{Slot: 1},
		{Slot: 2},
	}

	_, err := ProcessArgs(descs, []string{"x", "y", "z"})
	if err == nil {
		t.Fatal("expected error for extra positional token")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Type != ErrorTypeUnknownArgument {
		t.Errorf("expected ErrorTypeUnknownArgument, got %s", parseErr.Type)
	}
	if parseErr.Arg != "#3" {
		t.Errorf("expected Arg=%q, got %q", "#3", parseErr.Arg)
	}
}

// TestMissingValue tests the missing-value error when a valued flag
// consumed the last token
func TestMissingValue(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"o", "out"}, Type: String},
	}

	for _, args := range [][]string{
		{"-o"},
		{"--out"},
	} {
		_, err := ProcessArgs(descs, args)
		if err == nil {
			t.Fatalf("expected error for %v", args)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %T", err)
		}
		if parseErr.Type != ErrorTypeMissingValue {
			t.Errorf("expected ErrorTypeMissingValue, got %s", parseErr.Type)
		}
	}
}

// TestInvalidValue tests the invalid-value error naming the flag and
// the rejected raw text
func TestInvalidValue(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"count"}, Type: Int},
	}

	_, err := ProcessArgs(descs, []string{"--count", "abc"})
	if err == nil {
		t.Fatal("expected error for non-integer value")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Type != ErrorTypeInvalidValue {
		t.Errorf("expected ErrorTypeInvalidValue, got %s", parseErr.Type)
	}
	if parseErr.Arg != "--count" {
		t.Errorf("expected Arg=%q, got %q", "--count", parseErr.Arg)
	}
	if parseErr.Value != "abc" {
		t.Errorf("expected Value=%q, got %q", "abc", parseErr.Value)
	}
}

// TestMissingRequired tests post-scan enforcement of non-optional
// valued and positional arguments
func TestMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		descs   []*Descriptor
		args    []string
		wantErr bool
	}{
		{
			name:    "required valued flag absent",
			descs:   []*Descriptor{{Names: []string{"o"}, Type: String}},
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "required positional absent",
			descs:   []*Descriptor{{Slot: 1}},
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "optional valued flag absent",
			descs:   []*Descriptor{{Names: []string{"o"}, Type: String, IsOptional: true}},
			args:    []string{},
			wantErr: false,
		},
		{
			name:    "required valued flag with default",
			descs:   []*Descriptor{{Names: []string{"o"}, Type: String, DefaultValue: "-"}},
			args:    []string{},
			wantErr: false,
		},
		{
			name:    "required switch absent is fine",
			descs:   []*Descriptor{{Names: []string{"v"}}},
			args:    []string{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProcessArgs(tt.descs, tt.args)
			if tt.wantErr {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				if parseErr.Type != ErrorTypeMissingRequired {
					t.Errorf("expected ErrorTypeMissingRequired, got %s", parseErr.Type)
				}
			} else if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
		})
	}
}

// TestDefaultsOverwrittenByInput tests that explicit tokens win over
// declared defaults
func TestDefaultsOverwrittenByInput(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"o", "out"}, Type: String, DefaultValue: "default.txt"},
	}

	result, err := ProcessArgs(descs, []string{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.GetString("out"); got != "default.txt" {
		t.Errorf("expected default %q, got %q", "default.txt", got)
	}

	result, err = ProcessArgs(descs, []string{"--out", "given.txt"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.GetString("o"); got != "given.txt" {
		t.Errorf("expected input to win, got %q", got)
	}
}

// TestEnvSeed tests environment variable fallback and its precedence:
// above declared defaults, below explicit input
func TestEnvSeed(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"port"}, Type: Int, DefaultValue: 80, EnvVars: []string{"CYARG_TEST_PORT"}},
	}

	t.Setenv("CYARG_TEST_PORT", "8080")

	result, err := ProcessArgs(descs, []string{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.GetInt("port"); got != 8080 {
		t.Errorf("expected env value 8080, got %d", got)
	}

	result, err = ProcessArgs(descs, []string{"--port", "9000"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.GetInt("port"); got != 9000 {
		t.Errorf("expected input to win over env, got %d", got)
	}
}

// TestEnvInvalidValueFallsBack tests that unconvertible env values are
// skipped in favor of the declared default
func TestEnvInvalidValueFallsBack(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"port"}, Type: Int, DefaultValue: 80, EnvVars: []string{"CYARG_TEST_PORT"}},
	}

	t.Setenv("CYARG_TEST_PORT", "not-a-port")

	result, err := ProcessArgs(descs, []string{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.GetInt("port"); got != 80 {
		t.Errorf("expected default 80, got %d", got)
	}
}

// TestUnknownFlagSuggestion tests that unknown-argument errors carry
// the closest registered name
func TestUnknownFlagSuggestion(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"verbose"}},
		{Names: []string{"o", "out"}, Type: String, IsOptional: true},
	}

	_, err := ProcessArgs(descs, []string{"--verbos"})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Suggestion != "verbose" {
		t.Errorf("expected suggestion %q, got %q", "verbose", parseErr.Suggestion)
	}
}

// TestShortFlagMultibyteRune tests short flags named by a non-ASCII
// character: recognition, bundling and the error display form
func TestShortFlagMultibyteRune(t *testing.T) {
	descs := []*Descriptor{
		{Names: []string{"é"}},
		{Names: []string{"v"}},
		{Names: []string{"ø"}, Type: String, IsOptional: true},
	}

	result, err := ProcessArgs(descs, []string{"-é"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !result.GetBool("é") {
		t.Error("expected é=true")
	}

	result, err = ProcessArgs(descs, []string{"-év"})
	if err != nil {
		t.Fatalf("bundle parse failed: %v", err)
	}
	if !result.GetBool("é") || !result.GetBool("v") {
		t.Error("expected both bundle switches true")
	}

	result, err = ProcessArgs(descs, []string{"-øval"})
	if err != nil {
		t.Fatalf("inline value parse failed: %v", err)
	}
	if got, _ := result.GetString("ø"); got != "val" {
		t.Errorf("expected ø=%q, got %q", "val", got)
	}

	_, err = ProcessArgs(descs, []string{"-µ"})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Arg != "-µ" {
		t.Errorf("expected Arg=%q, got %q", "-µ", parseErr.Arg)
	}
}

// TestEmptyTokenIsPositional tests that an empty token resolves
// against the current positional slot
func TestEmptyTokenIsPositional(t *testing.T) {
	descs := []*Descriptor{
		{Slot: 1},
	}

	result, err := ProcessArgs(descs, []string{""})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := result.PosString(1); got != "" {
		t.Errorf("expected empty string at slot 1, got %q", got)
	}
}
