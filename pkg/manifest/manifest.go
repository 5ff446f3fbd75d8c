// Package manifest locates taxonomy manifest files on disk and watches
// them for changes so validation can re-run on edit.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// manifestExtensions are the file extensions treated as manifests.
var manifestExtensions = []string{".yaml", ".yml"}

// IsManifestFile reports whether a path looks like a taxonomy manifest.
func IsManifestFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range manifestExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Discover returns every manifest file under the given path, sorted
// for deterministic ordering. A file path is returned as-is when it is
// itself a manifest; hidden files and directories are skipped.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}

	if !info.IsDir() {
		if !IsManifestFile(path) {
			return nil, fmt.Errorf("%s is not a manifest file (.yaml or .yml)", path)
		}
		return []string{path}, nil
	}

	var manifests []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(filepath.Base(p), ".") && p != path {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.IsDir() && IsManifestFile(p) {
			manifests = append(manifests, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	sort.Strings(manifests)
	return manifests, nil
}
