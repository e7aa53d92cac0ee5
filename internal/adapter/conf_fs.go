// Package adapter contains filesystem and report-store adapters for the
// autotype CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

const confFileExt = ".conf"

// ConfFS abstracts filesystem-specific operations the workflow relies on
// when collecting and rewriting BIRD config files. It hides direct os access
// so the batch logic can be tested without touching the disk.
type ConfFS interface {
	// Get collects config files for the provided roots. Directories are
	// scanned recursively for *.conf files; explicitly named files are
	// taken regardless of extension. exclude holds regexes matched
	// against each candidate path.
	Get(roots []m.Path, exclude []string) ([]m.Source, error)

	// Walk traverses root. When recursive is false the walk stays in the
	// root directory.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Backup copies the file aside before an in-place rewrite and returns
	// the backup path.
	Backup(path m.Path) (m.Path, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// HashFile returns a stable fingerprint for the file at path, carried
	// into run reports.
	HashFile(path m.Path) (string, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain
// layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalConfFS is the disk-backed ConfFS implementation.
type LocalConfFS struct{}

// NewLocalConfFS constructs a LocalConfFS ready to be wired into the
// workflow.
func NewLocalConfFS() *LocalConfFS {
	return &LocalConfFS{}
}

// Get collects config files for the provided roots.
func (a *LocalConfFS) Get(roots []m.Path, exclude []string) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	for _, root := range roots {
		rootStr, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootStr))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			// An explicitly named file is processed whatever its
			// extension, matching the original tool.
			if excluded(rootStr, excludes) {
				continue
			}

			sources = appendSource(sources, seen, a, rootStr)

			continue
		}

		err = a.Walk(m.Path(rootStr), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || filepath.Ext(path) != confFileExt || excluded(path, excludes) {
				return nil
			}

			sources = appendSource(sources, seen, a, path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalConfFS) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalConfFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalConfFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Backup copies path to path.bak and returns the backup path.
func (a *LocalConfFS) Backup(path m.Path) (m.Path, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return "", err
	}

	info, err := a.FileInfo(path)
	if err != nil {
		return "", err
	}

	backup := m.Path(string(path) + ".bak")
	if err := a.WriteFile(backup, content, info.Mode().Perm()); err != nil {
		return "", err
	}

	return backup, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalConfFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalConfFS) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func appendSource(sources []m.Source, seen map[string]struct{}, a *LocalConfFS, path string) []m.Source {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if _, exists := seen[abs]; exists {
		return sources
	}

	seen[abs] = struct{}{}

	hash, _ := a.HashFile(m.Path(abs))

	return append(sources, m.Source{Origin: m.Path(abs), Hash: hash})
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func excluded(path string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// normalizeRootPath expands ~, strips a trailing /... marker, and converts
// the path to absolute form. Directories are scanned recursively either way;
// the marker is accepted for symmetry with Go tooling path patterns.
func normalizeRootPath(root string) (string, bool, error) {
	rootStr, _ := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, true, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
