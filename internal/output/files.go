package output

import (
	"sort"
	"time"
)

// FileInfo describes one generated document on disk.
type FileInfo struct {
	Filename string    `json:"filename"`
	Bytes    int64     `json:"bytes"`
	Modified time.Time `json:"modified"`
}

func sortFilesByModified(files []FileInfo) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})
}
