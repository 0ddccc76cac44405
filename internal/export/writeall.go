package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

var Formats = []Format{FormatCSV, FormatJSON, FormatXLSX}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// WriteAll writes the report into dir once per format and returns the
// written paths. CSV produces one file per sheet. Files are written
// concurrently; the first failure cancels the rest.
func WriteAll(ctx context.Context, dir string, r Report, formats []Format) ([]string, error) {
	// Each format is written once, however often or in whatever case it was given.
	parsed := make([]Format, 0, len(formats))
	seen := make(map[Format]bool, len(formats))
	for _, format := range formats {
		f, err := ParseFormat(string(format))
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		parsed = append(parsed, f)
	}
	if len(parsed) == 0 {
		return nil, errors.New("no export format given")
	}

	g, ctx := errgroup.WithContext(ctx)

	var (
		mu    sync.Mutex
		paths []string
	)
	write := func(path string, fn func(string) error) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(path); err != nil {
				return err
			}
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()
			return nil
		})
	}

	for _, format := range parsed {
		switch format {
		case FormatCSV:
			for _, sheet := range r.Sheets() {
				write(filepath.Join(dir, fileName(sheet.Name)+".csv"), func(p string) error {
					return ToCSV(sheet, p)
				})
			}
		case FormatJSON:
			write(filepath.Join(dir, "studiodesk.json"), func(p string) error {
				return ToJSON(r, p)
			})
		case FormatXLSX:
			write(filepath.Join(dir, "studiodesk.xlsx"), func(p string) error {
				return ToXLSX(r.Sheets(), p)
			})
		}
	}

	err := g.Wait()
	sort.Strings(paths)
	return paths, err
}

func fileName(sheet string) string {
	return strings.ReplaceAll(strings.ToLower(sheet), " ", "_")
}
