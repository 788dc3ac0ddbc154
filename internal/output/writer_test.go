package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"signalpro/internal/signal"
)

func testRecord(t *testing.T) *signal.Record {
	t.Helper()
	rec, err := signal.NewRecord(signal.RecordParams{
		Ticker:              "CRCL",
		DisplayName:         "Circle Internet Group",
		Kind:                signal.KindIPODebut,
		CurrentPrice:        decimal.NewFromFloat(69.00),
		PriceChangeAbsolute: decimal.NewFromFloat(37.95),
		PriceChangePercent:  decimal.NewFromFloat(122.6),
		Priority:            signal.PriorityHot,
		TimestampLabel:      "15 min ago",
	})
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestDefaultFilename(t *testing.T) {
	if got := DefaultFilename(testRecord(t)); got != "CRCL_ipo-debut.html" {
		t.Fatalf("got %q", got)
	}
}

func TestSummaryFor(t *testing.T) {
	s := SummaryFor(testRecord(t))

	if s.Ticker != "CRCL" || s.Kind != "ipo-debut" || s.Priority != "elevated-hot" {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Price != "69.00" {
		t.Fatalf("price %q", s.Price)
	}
	if s.ChangePercent != "122.6" {
		t.Fatalf("change %q", s.ChangePercent)
	}
	if s.Filename != "CRCL_ipo-debut.html" {
		t.Fatalf("filename %q", s.Filename)
	}
}

func TestWriterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "signals")
	w := NewWriter(dir, zerolog.Nop())

	res, err := w.Write("CRCL_ipo-debut.html", "<html></html>")
	if err != nil {
		t.Fatal(err)
	}

	if res.Filename != "CRCL_ipo-debut.html" {
		t.Fatalf("filename %q", res.Filename)
	}
	if res.Bytes != len("<html></html>") {
		t.Fatalf("bytes %d", res.Bytes)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html></html>" {
		t.Fatalf("content %q", data)
	}
}

func TestWriterRequiresFilename(t *testing.T) {
	w := NewWriter(t.TempDir(), zerolog.Nop())
	if _, err := w.Write("", "doc"); err == nil {
		t.Fatal("empty filename should be rejected")
	}
}

func TestWriterStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, zerolog.Nop())

	res, err := w.Write("../escape.html", "doc")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(res.Path) != dir {
		t.Fatalf("file escaped the output dir: %s", res.Path)
	}
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, zerolog.Nop())

	if _, err := w.Write("old.html", "old"); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write("new.html", "new"); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write("summary.json", "[]"); err != nil {
		t.Fatal(err)
	}

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "old.html"), past, past); err != nil {
		t.Fatal(err)
	}

	files, err := w.ListDocuments()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files %d, want 2 (json excluded)", len(files))
	}
	if files[0].Filename != "new.html" || files[1].Filename != "old.html" {
		t.Fatalf("unexpected order: %s, %s", files[0].Filename, files[1].Filename)
	}
}

func TestListDocumentsMissingDir(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "nowhere"), zerolog.Nop())
	files, err := w.ListDocuments()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Fatalf("files %d, want none", len(files))
	}
}
