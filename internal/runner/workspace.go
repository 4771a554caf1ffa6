package runner

import (
	"os"
	"path/filepath"
	"sync"
)

// WorkspaceDirName is the fixed name of the scratch directory.
const WorkspaceDirName = ".tmp_ares"

// Workspace owns the scratch directory and the single source file inside it.
type Workspace struct {
	dir        string
	sourcePath string

	destroyOnce sync.Once
	destroyErr  error
}

// CreateWorkspace creates baseDir/.tmp_ares and an empty source file in it.
// It fails if the directory already exists. On a partial failure the
// directory is removed again before returning.
func CreateWorkspace(baseDir, sourceName string) (*Workspace, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, &WorkspaceError{Op: "getwd", Path: ".", Err: err}
		}
		baseDir = wd
	}

	dir := filepath.Join(baseDir, WorkspaceDirName)
	if err := os.Mkdir(dir, 0755); err != nil {
		return nil, &WorkspaceError{Op: "create", Path: dir, Err: err}
	}

	sourcePath := filepath.Join(dir, sourceName)
	f, err := os.OpenFile(sourcePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, &WorkspaceError{Op: "create", Path: sourcePath, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.RemoveAll(dir)
		return nil, &WorkspaceError{Op: "create", Path: sourcePath, Err: err}
	}

	return &Workspace{dir: dir, sourcePath: sourcePath}, nil
}

// Dir returns the scratch directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// SourcePath returns the path of the source file.
func (w *Workspace) SourcePath() string {
	return w.sourcePath
}

// Write replaces the source file contents. The new text is written to a
// temporary sibling and renamed over the source file.
func (w *Workspace) Write(text string) error {
	tmp, err := os.CreateTemp(w.dir, ".source-*")
	if err != nil {
		return &WorkspaceError{Op: "write", Path: w.sourcePath, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WorkspaceError{Op: "write", Path: w.sourcePath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WorkspaceError{Op: "write", Path: w.sourcePath, Err: err}
	}
	if err := os.Rename(tmpName, w.sourcePath); err != nil {
		os.Remove(tmpName)
		return &WorkspaceError{Op: "write", Path: w.sourcePath, Err: err}
	}
	return nil
}

// Destroy removes the scratch directory tree. Only the first call does any
// work; later calls return the same result.
func (w *Workspace) Destroy() error {
	w.destroyOnce.Do(func() {
		if err := os.RemoveAll(w.dir); err != nil {
			w.destroyErr = &WorkspaceError{Op: "remove", Path: w.dir, Err: err}
		}
	})
	return w.destroyErr
}
