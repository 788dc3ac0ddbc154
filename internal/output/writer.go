// Package output owns the on-disk side of signal generation: filenames,
// directory creation, document writes, and the machine-readable summary
// that collaborators derive from a record without re-composing it.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"signalpro/internal/signal"
)

// Result describes one written file.
type Result struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Bytes    int    `json:"bytes"`
}

// Summary is the machine-readable companion record for a rendered signal.
type Summary struct {
	Ticker        string `json:"ticker"`
	Kind          string `json:"kind"`
	Priority      string `json:"priority"`
	Price         string `json:"price"`
	ChangePercent string `json:"changePercent"`
	Timestamp     string `json:"timestamp"`
	Filename      string `json:"filename"`
}

// SummaryFor derives the companion summary from a record.
func SummaryFor(rec *signal.Record) Summary {
	return Summary{
		Ticker:        rec.Ticker,
		Kind:          string(rec.Kind),
		Priority:      string(rec.Priority),
		Price:         rec.CurrentPrice.StringFixed(2),
		ChangePercent: rec.PriceChangePercent.StringFixed(1),
		Timestamp:     rec.TimestampLabel,
		Filename:      DefaultFilename(rec),
	}
}

// DefaultFilename returns the recommended destination name for a record,
// "<TICKER>_<kind>.html".
func DefaultFilename(rec *signal.Record) string {
	return fmt.Sprintf("%s_%s.html", rec.Ticker, rec.Kind)
}

// Writer persists rendered documents beneath a base directory.
type Writer struct {
	dir    string
	logger zerolog.Logger
}

// NewWriter constructs a writer rooted at dir.
func NewWriter(dir string, logger zerolog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger.With().Str("component", "output").Logger()}
}

// Dir returns the base output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write stores document under filename, creating the output directory if
// absent. The write is all-or-nothing: on error no partial file is kept.
func (w *Writer) Write(filename, document string) (Result, error) {
	if filename == "" {
		return Result{}, fmt.Errorf("output: filename is required")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, filepath.Base(filename))
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		// Do not leave a truncated document behind.
		_ = os.Remove(path)
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}

	res := Result{Path: path, Filename: filepath.Base(filename), Bytes: len(document)}
	w.logger.Info().Str("path", res.Path).Int("bytes", res.Bytes).Msg("document written")
	return res, nil
}

// ListDocuments returns the generated HTML filenames in the output
// directory, most recently modified first.
func (w *Writer) ListDocuments() ([]FileInfo, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list output dir %s: %w", w.dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".html" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Filename: entry.Name(),
			Bytes:    info.Size(),
			Modified: info.ModTime(),
		})
	}

	sortFilesByModified(files)
	return files, nil
}
