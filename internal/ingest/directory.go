package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/election-extractor/constants"
)

// DirStats aggregates a discovery walk.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// DiscoverDirectory walks root and returns the report documents to
// process, hidden entries skipped. Results are sorted by base name so
// row order is stable across runs and platforms.
func DiscoverDirectory(root string, skipHidden bool) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var paths []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return paths, stats, fmt.Errorf("walk: %w", err)
	}

	sort.Slice(paths, func(i, j int) bool {
		if a, b := filepath.Base(paths[i]), filepath.Base(paths[j]); a != b {
			return a < b
		}
		return paths[i] < paths[j]
	})
	return paths, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
