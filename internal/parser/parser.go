// Package parser loads match records exported from replay files.
package parser

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pable/go-slp-stats/internal/model"
)

// DefaultExt is the extension of exported match records.
const DefaultExt = ".json"

// ParseRecord reads the exported match record at path.
func ParseRecord(path string) (*model.MatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record: %w", err)
	}
	defer f.Close()

	// Hash file as the match ID.
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("hash record: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek record: %w", err)
	}

	var rec model.MatchRecord
	if err := json.NewDecoder(f).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", filepath.Base(path), err)
	}
	rec.FilePath = path
	rec.Hash = fmt.Sprintf("%x", h.Sum(nil))
	return &rec, nil
}

// ListRecords returns the files in dir with the given extension (case-insensitive),
// sorted by name. Subdirectories are not walked.
func ListRecords(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// ParseDir decodes every record in dir. Files are read concurrently; the result
// keeps directory order. Any unreadable record fails the whole load.
func ParseDir(ctx context.Context, dir, ext string) ([]*model.MatchRecord, error) {
	paths, err := ListRecords(dir, ext)
	if err != nil {
		return nil, err
	}

	records := make([]*model.MatchRecord, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := ParseRecord(path)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
