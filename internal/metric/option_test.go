package metric

import (
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

func testOptions() []Option {
	return []Option{
		{Name: "word_pattern", Kind: KindPattern, Default: `\b\w+\b`},
		{Name: "precision", Kind: KindInt, Default: 2},
		{Name: "cutoff", Kind: KindFloat, Default: 0.01},
		{Name: "terms", Kind: KindStringList, Required: true},
		{Name: "total_label", Kind: KindString},
	}
}

func TestResolve_AppliesDefaults(t *testing.T) {
	vals, err := Resolve(testOptions(), map[string]string{"terms": "a,b"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if got := vals.Int("precision"); got != 2 {
		t.Errorf("precision = %d, want 2", got)
	}
	if got := vals.Float("cutoff"); got != 0.01 {
		t.Errorf("cutoff = %v, want 0.01", got)
	}
	re := vals.Pattern("word_pattern")
	if re == nil {
		t.Fatal("word_pattern default was not compiled")
	}
	if got := len(re.FindAllString("one two", -1)); got != 2 {
		t.Errorf("default pattern matched %d words, want 2", got)
	}
	if got := vals.Strings("terms"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("terms = %v, want [a b]", got)
	}
	if _, ok := vals["total_label"]; ok {
		t.Error("unset option without default should be absent")
	}
}

func TestResolve_ParsesProvidedValues(t *testing.T) {
	vals, err := Resolve(testOptions(), map[string]string{
		"terms":     " notice , shall ",
		"precision": "4",
		"cutoff":    "0.5",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if got := vals.Int("precision"); got != 4 {
		t.Errorf("precision = %d, want 4", got)
	}
	if got := vals.Float("cutoff"); got != 0.5 {
		t.Errorf("cutoff = %v, want 0.5", got)
	}
	terms := vals.Strings("terms")
	if len(terms) != 2 || terms[0] != "notice" || terms[1] != "shall" {
		t.Errorf("terms = %v, want trimmed [notice shall]", terms)
	}
}

func TestResolve_MissingRequired(t *testing.T) {
	_, err := Resolve(testOptions(), nil)
	if err == nil {
		t.Fatal("expected error for missing required option")
	}
	if !strings.Contains(err.Error(), "terms") {
		t.Fatalf("error = %q, expected it to name the option", err)
	}
}

func TestResolve_UnknownOption(t *testing.T) {
	_, err := Resolve(testOptions(), map[string]string{"terms": "a", "bogus": "1"})
	if err == nil {
		t.Fatal("expected error for unknown option")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("error = %q, expected it to name the option", err)
	}
}

func TestResolve_BadValues(t *testing.T) {
	if _, err := Resolve(testOptions(), map[string]string{"terms": "a", "precision": "two"}); err == nil {
		t.Error("expected error for non-integer precision")
	}
	if _, err := Resolve(testOptions(), map[string]string{"terms": "a", "word_pattern": "("}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestBindAndFromFlags(t *testing.T) {
	opts := testOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindFlags(fs, opts)

	err := fs.Parse([]string{"--terms", "notice,shall", "--precision", "3"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	vals, err := FromFlags(fs, opts)
	if err != nil {
		t.Fatalf("FromFlags: %v", err)
	}
	if got := vals.Int("precision"); got != 3 {
		t.Errorf("precision = %d, want 3", got)
	}
	if vals.Pattern("word_pattern") == nil {
		t.Error("pattern flag default was not compiled")
	}
	if got := vals.Strings("terms"); len(got) != 2 {
		t.Errorf("terms = %v, want two entries", got)
	}
}

func TestFromFlags_MissingRequired(t *testing.T) {
	opts := testOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindFlags(fs, opts)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if _, err := FromFlags(fs, opts); err == nil {
		t.Fatal("expected error for missing required flag")
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.23456, 2); got != 1.23 {
		t.Errorf("Round(1.23456, 2) = %v, want 1.23", got)
	}
	if got := Round(2.675, 0); got != 3 {
		t.Errorf("Round(2.675, 0) = %v, want 3", got)
	}
	if got := Round(1.5, -1); got != 1.5 {
		t.Errorf("Round(1.5, -1) = %v, want 1.5 unchanged", got)
	}
}
