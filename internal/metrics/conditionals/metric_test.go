package conditionals

import (
	"testing"

	"github.com/jnelson16/quantgov/internal/corpus"
)

func count(t *testing.T, text string) any {
	t.Helper()
	m := &Metric{}
	row, err := m.Process(corpus.NewDocument([]string{"doc"}, text), nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return row[1]
}

func TestProcess_CountsEachTerm(t *testing.T) {
	// if, except, when, provided: four matches.
	got := count(t, "if the applicant fails, except when provided otherwise.")
	if got != 4 {
		t.Errorf("conditionals = %v, want 4", got)
	}
}

func TestProcess_CaseSensitive(t *testing.T) {
	// The fixed pattern is lowercase; a capitalized "If" is not counted.
	got := count(t, "If the applicant fails, except when provided otherwise.")
	if got != 3 {
		t.Errorf("conditionals = %v, want 3", got)
	}
}

func TestProcess_PhrasesSpanNewlines(t *testing.T) {
	got := count(t, "in the\nevent of default, payment stops.")
	if got != 1 {
		t.Errorf("conditionals = %v, want 1 for phrase across newline", got)
	}
}

func TestProcess_WholeWordsOnly(t *testing.T) {
	// "whenever" must not also count the embedded "when"; "butter"
	// must not count "but".
	if got := count(t, "whenever butter melts"); got != 1 {
		t.Errorf("conditionals = %v, want 1", got)
	}
}

func TestProcess_NoMatches(t *testing.T) {
	if got := count(t, "plain declarative text"); got != 0 {
		t.Errorf("conditionals = %v, want 0", got)
	}
}
