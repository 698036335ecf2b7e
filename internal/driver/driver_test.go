package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cppfqn/internal/diag"
	"cppfqn/internal/source"
	"cppfqn/internal/trace"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestParseLine(t *testing.T) {
	ctx := context.Background()

	ok := ParseLine(ctx, "one::two::three()")
	if !ok.OK() || ok.Declarator == nil || ok.Declarator.Name != "three" || len(ok.Tokens) != 7 {
		t.Fatalf("ParseLine success = %+v", ok)
	}

	tests := []struct {
		input  string
		code   diag.Code
		tokens bool
	}{
		{"three(", diag.SynUnexpectedEOF, true},
		{"a.b", diag.LexUnknownChar, false},
		{"", diag.SynMissingName, false},
	}
	for _, tt := range tests {
		res := ParseLine(ctx, tt.input)
		if res.OK() || res.Diagnostic.Code != tt.code {
			t.Errorf("ParseLine(%q) diagnostic = %+v, want %s", tt.input, res.Diagnostic, tt.code.ID())
		}
		if (res.Tokens != nil) != tt.tokens {
			t.Errorf("ParseLine(%q) tokens = %v", tt.input, res.Tokens)
		}
	}
}

func TestParseListingLocatesDiagnostics(t *testing.T) {
	l := source.NewListing("sigs.sig", []byte("# header\nf()\n\nthree(\nns::g() const\n"))
	res, err := ParseListing(context.Background(), l, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Lines) != 3 || res.Failed() != 1 {
		t.Fatalf("lines=%d failed=%d", len(res.Lines), res.Failed())
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Path != "sigs.sig" || items[0].Line != 4 {
		t.Fatalf("diagnostics = %+v", items)
	}
	if text, ok := res.Source(4); !ok || text != "three(" {
		t.Errorf("Source(4) = %q, %v", text, ok)
	}
	if !res.Lines[2].Declarator.Const {
		t.Errorf("line 5 should be const: %+v", res.Lines[2].Declarator)
	}
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.sig"), "one::two::three()\nint f(a, b) volatile\n")
	writeFile(t, filepath.Join(dir, "a.sig"), "three(\n")
	writeFile(t, filepath.Join(dir, "sub", "c.sig"), "ns<T>::value()\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored\n")

	files, err := ListFiles([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.sig"),
		filepath.Join(dir, "b.sig"),
		filepath.Join(dir, "sub", "c.sig"),
	}
	if len(files) != len(want) {
		t.Fatalf("ListFiles = %v", files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("ListFiles[%d] = %s, want %s", i, files[i], want[i])
		}
	}
	missing := filepath.Join(dir, "missing.sig")
	files = append(files, missing)

	var mu sync.Mutex
	final := map[string]Event{}
	sink := SinkFunc(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		if ev.Status == StatusDone || ev.Status == StatusError {
			final[ev.File] = ev
		}
	})

	results, err := ParseFiles(context.Background(), files, Options{Jobs: 2, MaxDiagnostics: 10, Sink: sink})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r == nil || r.Path != normalized(files[i]) && r.Path != files[i] {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
	}
	if results[1].Failed() != 0 || len(results[1].Lines) != 2 {
		t.Errorf("b.sig: %+v", results[1])
	}
	if final[files[0]].Status != StatusError || final[files[0]].Failed != 1 {
		t.Errorf("a.sig event = %+v", final[files[0]])
	}
	if final[files[1]].Status != StatusDone || final[files[1]].Lines != 2 {
		t.Errorf("b.sig event = %+v", final[files[1]])
	}
	if ev := final[missing]; ev.Status != StatusError || ev.Err == nil {
		t.Errorf("missing event = %+v", ev)
	}

	bag := MergeDiagnostics(results, 100)
	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("merged diagnostics = %+v", items)
	}
	codes := map[diag.Code]bool{items[0].Code: true, items[1].Code: true}
	if !codes[diag.IOLoadFileError] || !codes[diag.SynUnexpectedEOF] {
		t.Errorf("codes = %v", codes)
	}
}

func normalized(path string) string { return filepath.ToSlash(path) }

func TestParseFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sig")
	writeFile(t, path, "f()\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ParseFiles(ctx, []string{path}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestParseFilesTrace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sig")
	writeFile(t, path, "f()\ng()\n")

	ring := trace.NewRingTracer(64, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)
	if _, err := ParseFiles(ctx, []string{path}, Options{Jobs: 1}); err != nil {
		t.Fatal(err)
	}

	begins := map[string]int{}
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanBegin {
			begins[ev.Name]++
		}
	}
	if begins["parse_files"] != 1 || begins["parse_file"] != 1 || begins["parse"] != 2 {
		t.Fatalf("span begins = %v", begins)
	}
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanBegin && ev.Name == "parse" && ev.ParentID == 0 {
			t.Errorf("parse span has no parent")
		}
	}
}
