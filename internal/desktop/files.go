package desktop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrOutsideDesktop is returned when a delete targets a path outside the
// desktop directory.
var ErrOutsideDesktop = errors.New("Can only delete files on Desktop for safety")

// FileEntry describes one file on the desktop.
type FileEntry struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Extension string `json:"extension"`
	SizeBytes int64  `json:"size_bytes"`
}

// FileMatch is a file whose name matched a search term.
type FileMatch struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// ListResult is the listing of the desktop directory.
type ListResult struct {
	DesktopPath string      `json:"desktop_path"`
	FilesFound  int         `json:"files_found"`
	Files       []FileEntry `json:"files"`
}

// FindResult holds the files matching a search term.
type FindResult struct {
	SearchTerm   string      `json:"search_term"`
	MatchesFound int         `json:"matches_found"`
	Matches      []FileMatch `json:"matches"`
}

// DeleteResult confirms a deletion.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Files gives access to the regular files directly inside one desktop
// directory. Deletion is the only mutation and is confined to the directory
// tree.
type Files struct {
	Dir string
}

// files returns the regular files (following symlinks) directly inside the
// desktop directory, sorted by name.
func (f Files) files() ([]FileEntry, error) {
	info, err := os.Stat(f.Dir)
	if err != nil || !info.IsDir() {
		return nil, errors.New("Desktop path not found")
	}

	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		return nil, fmt.Errorf("read desktop: %w", err)
	}

	files := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(f.Dir, e.Name())
		st, err := os.Stat(path)
		if err != nil || !st.Mode().IsRegular() {
			continue
		}
		files = append(files, FileEntry{
			Name:      e.Name(),
			Path:      path,
			Extension: filepath.Ext(e.Name()),
			SizeBytes: st.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// List returns the desktop files, optionally only those whose extension
// equals extension (case-insensitive; a missing leading dot is added).
func (f Files) List(extension string) (*ListResult, error) {
	all, err := f.files()
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(strings.TrimSpace(extension))
	if want != "" && !strings.HasPrefix(want, ".") {
		want = "." + want
	}

	files := make([]FileEntry, 0, len(all))
	for _, file := range all {
		if want == "" || strings.ToLower(file.Extension) == want {
			files = append(files, file)
		}
	}
	return &ListResult{DesktopPath: f.Dir, FilesFound: len(files), Files: files}, nil
}

// Find returns the desktop files whose name contains term
// (case-insensitive).
func (f Files) Find(term string) (*FindResult, error) {
	all, err := f.files()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	matches := make([]FileMatch, 0)
	for _, file := range all {
		if strings.Contains(strings.ToLower(file.Name), needle) {
			matches = append(matches, FileMatch{Name: file.Name, Path: file.Path, Extension: file.Extension})
		}
	}
	return &FindResult{SearchTerm: term, MatchesFound: len(matches), Matches: matches}, nil
}

// Delete removes the file at path. The path must lie strictly inside the
// desktop directory (at any depth, after resolving symlinked directories)
// and name a regular file. Only the resolved path that passed the check is
// touched.
func (f Files) Delete(path string) (*DeleteResult, error) {
	target, err := f.resolve(path)
	if err != nil {
		return nil, err
	}

	st, err := os.Lstat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("File not found: %s", path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("Path is not a file: %s", path)
	}
	if st.Mode()&os.ModeSymlink == 0 && !st.Mode().IsRegular() {
		return nil, fmt.Errorf("Path is not a file: %s", path)
	}

	if err := os.Remove(target); err != nil {
		return nil, fmt.Errorf("Error deleting file: %w", err)
	}
	return &DeleteResult{Success: true, Message: "File deleted: " + path}, nil
}

// resolve maps path to the entry it names below the desktop directory. The
// parent directory is resolved through symlinks, so neither a linked folder
// nor a "link/.." segment can reach outside the desktop. The final element
// itself is not followed.
func (f Files) resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("filepath is required")
	}

	rootAbs, err := filepath.Abs(f.Dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", f.Dir, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	root, err := filepath.EvalSymlinks(rootAbs)
	if err != nil {
		return "", fmt.Errorf("desktop directory %s: %w", f.Dir, err)
	}
	if !below(rootAbs, abs) && !below(root, abs) {
		return "", ErrOutsideDesktop
	}

	parent, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("File not found: %s", path)
		}
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	target := filepath.Join(parent, filepath.Base(abs))
	if !below(root, target) {
		return "", ErrOutsideDesktop
	}
	return target, nil
}

// below reports whether path lies strictly inside dir.
func below(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
