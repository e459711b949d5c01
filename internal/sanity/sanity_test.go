package sanity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func table(ids []string, words []int) *Table {
	t := &Table{IDColumns: []string{"path"}}
	for i := range words {
		t.IDs = append(t.IDs, []string{ids[i]})
		t.Words = append(t.Words, words[i])
	}
	return t
}

func TestBasicStatistics(t *testing.T) {
	tbl := table([]string{"a", "b", "c"}, []int{10, 0, 90})
	stats := tbl.BasicStatistics()
	if stats.Documents != 3 {
		t.Errorf("Documents = %d, want 3", stats.Documents)
	}
	if stats.TotalWords != 100 {
		t.Errorf("TotalWords = %d, want 100", stats.TotalWords)
	}
}

func TestExtremeDocuments(t *testing.T) {
	tbl := table([]string{"a", "b", "c"}, []int{0, 0, 100})
	extremes, err := tbl.ExtremeDocuments()
	if err != nil {
		t.Fatalf("ExtremeDocuments: %v", err)
	}

	if extremes.MaxDocument != "c.txt" || extremes.MaxWords != 100 {
		t.Errorf("max = %s/%d, want c.txt/100", extremes.MaxDocument, extremes.MaxWords)
	}
	// First occurrence wins min ties.
	if extremes.MinDocument != "a.txt" || extremes.MinWords != 0 {
		t.Errorf("min = %s/%d, want a.txt/0", extremes.MinDocument, extremes.MinWords)
	}
	if extremes.MinCount != 2 {
		t.Errorf("MinCount = %d, want 2", extremes.MinCount)
	}
}

func TestExtremeDocuments_EmptyTable(t *testing.T) {
	if _, err := (&Table{}).ExtremeDocuments(); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestRaiseWarning(t *testing.T) {
	tbl := table([]string{"a", "b", "c"}, []int{0, 0, 100})
	// Two of three documents sit at the minimum; a 0.5 cutoff allows at
	// most 1.5, so the corpus warns.
	if !tbl.RaiseWarning(0.5) {
		t.Error("RaiseWarning(0.5) = false, want true")
	}
	if tbl.RaiseWarning(0.7) {
		t.Error("RaiseWarning(0.7) = true, want false")
	}
}

func TestCheck(t *testing.T) {
	tbl := table([]string{"2020/1", "2020/2"}, []int{5, 500})
	report, err := Check(tbl, DefaultCutoff)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if report.Stats.Documents != 2 || report.Stats.TotalWords != 505 {
		t.Errorf("stats = %+v", report.Stats)
	}
	if report.Extremes.MinDocument != "2020/1.txt" {
		t.Errorf("MinDocument = %s, want 2020/1.txt", report.Extremes.MinDocument)
	}
	if report.Cutoff != DefaultCutoff {
		t.Errorf("Cutoff = %v, want %v", report.Cutoff, DefaultCutoff)
	}
	// One minimum document out of two exceeds the 1% cutoff.
	if !report.Warning {
		t.Error("Warning = false, want true")
	}
}

func TestDocumentID_JoinsColumns(t *testing.T) {
	tbl := &Table{
		IDColumns: []string{"year", "docno"},
		IDs:       [][]string{{"2020", "17"}},
		Words:     []int{42},
	}
	if got := tbl.DocumentID(0); got != "2020/17.txt" {
		t.Errorf("DocumentID = %q, want %q", got, "2020/17.txt")
	}
}

func writeMetadata(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing metadata: %v", err)
	}
	return path
}

func TestLoadMetadata(t *testing.T) {
	path := writeMetadata(t, "year,docno,words\n2020,1,120\n2020,2,80\n")
	tbl, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("LoadMetadata: %v", err)
	}

	if len(tbl.IDColumns) != 2 || tbl.IDColumns[0] != "year" {
		t.Errorf("IDColumns = %v", tbl.IDColumns)
	}
	if len(tbl.Words) != 2 || tbl.Words[0] != 120 || tbl.Words[1] != 80 {
		t.Errorf("Words = %v", tbl.Words)
	}
	if got := tbl.DocumentID(1); got != "2020/2.txt" {
		t.Errorf("DocumentID(1) = %q", got)
	}
}

func TestLoadMetadata_SchemaErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no words column", "year,docno,count\n2020,1,120\n"},
		{"words first", "words,year\n120,2020\n"},
		{"non-numeric words", "year,words\n2020,many\n"},
		{"negative words", "year,words\n2020,-4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadMetadata(writeMetadata(t, tc.content))
			var metaErr *MetadataError
			if !errors.As(err, &metaErr) {
				t.Fatalf("err = %v, want MetadataError", err)
			}
		})
	}
}
