package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Scanner finds test result files in a directory tree
type Scanner struct {
	ignored map[string]struct{}
}

// NewScanner creates a Scanner that never descends into the named directories
func NewScanner(ignoredDirs []string) *Scanner {
	ignored := make(map[string]struct{}, len(ignoredDirs))
	for _, dir := range ignoredDirs {
		if dir = strings.TrimSpace(dir); dir != "" {
			ignored[dir] = struct{}{}
		}
	}
	return &Scanner{ignored: ignored}
}

// Scan returns the files under dir with one of the given extensions, in lexical order.
// Extensions are compared case-insensitively and include the leading dot.
func (s *Scanner) Scan(dir string, exts []string) ([]string, error) {
	dir = filepath.Clean(dir)
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("result directory %s: %w", dir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("result path is not a directory: %s", dir)
	}

	wanted := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		wanted[strings.ToLower(ext)] = struct{}{}
	}

	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && s.skip(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := wanted[strings.ToLower(filepath.Ext(path))]; ok {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// skip reports whether a directory is hidden or ignored
func (s *Scanner) skip(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := s.ignored[name]
	return ok
}
