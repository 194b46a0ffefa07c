package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"nyanfmt/internal/project"
)

// CollectSourceFiles expands paths into a sorted, de-duplicated file list.
// Directories are walked recursively; only files with a configured extension
// are kept and excluded directory names are skipped. A file named explicitly
// is kept whatever its extension.
func CollectSourceFiles(ctx context.Context, paths []string, cfg project.Config) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && cfg.Excluded(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if cfg.HasExtension(path) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}
