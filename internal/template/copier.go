package template

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iiot-workflow/wfinit/internal/defs"
)

// Copier copies template files from a source filesystem into a destination
// directory, keeping the source file mode and modification time.
type Copier interface {
	// Copy copies srcPath (slash-separated, relative to the source filesystem)
	// to destRelPath under the destination root. A missing source file yields
	// an error matching ErrTemplateNotFound.
	Copy(srcPath, destRelPath string) error

	// Exists reports whether srcPath is a regular file in the source filesystem.
	Exists(srcPath string) bool
}

// copier is the concrete implementation of Copier.
type copier struct {
	src      fs.FS
	destRoot string
}

// NewCopier creates a Copier reading from src and writing under destRoot.
// In production src comes from os.DirFS; in tests use testing/fstest.MapFS.
func NewCopier(src fs.FS, destRoot string) Copier {
	return &copier{src: src, destRoot: filepath.Clean(destRoot)}
}

// Exists reports whether srcPath is a regular file in the source filesystem.
func (c *copier) Exists(srcPath string) bool {
	info, err := fs.Stat(c.src, srcPath)
	return err == nil && info.Mode().IsRegular()
}

// Copy copies a single file, creating destination parents as needed.
func (c *copier) Copy(srcPath, destRelPath string) error {
	if err := validateCopyPath(c.destRoot, destRelPath); err != nil {
		return err
	}

	info, err := fs.Stat(c.src, srcPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, srcPath)
		}
		return fmt.Errorf("template copy stat %q: %w", srcPath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrTemplateNotFound, srcPath)
	}

	in, err := c.src.Open(srcPath)
	if err != nil {
		return fmt.Errorf("template copy open %q: %w", srcPath, err)
	}
	defer func() { _ = in.Close() }()

	destPath := filepath.Join(c.destRoot, filepath.FromSlash(destRelPath))
	if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
		return fmt.Errorf("template copy mkdir %q: %w", filepath.Dir(destPath), err)
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = defs.FilePerm
	}
	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("template copy create %q: %w", destPath, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("template copy write %q: %w", destPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("template copy close %q: %w", destPath, err)
	}

	// OpenFile applies the umask and leaves an existing file's mode untouched.
	if err := os.Chmod(destPath, perm); err != nil {
		return fmt.Errorf("template copy chmod %q: %w", destPath, err)
	}
	if mtime := info.ModTime(); !mtime.IsZero() {
		if err := os.Chtimes(destPath, mtime, mtime); err != nil {
			return fmt.Errorf("template copy chtimes %q: %w", destPath, err)
		}
	}

	return nil
}

// validateCopyPath ensures a destination path does not escape destRoot.
func validateCopyPath(destRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absRoot, err := filepath.Abs(destRoot)
	if err != nil {
		return fmt.Errorf("resolve destination root: %w", err)
	}

	absPath := filepath.Join(absRoot, cleaned)
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes destination root", ErrPathTraversal, relPath)
	}

	return nil
}
