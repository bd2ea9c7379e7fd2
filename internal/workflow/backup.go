package workflow

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iiot-workflow/wfinit/internal/defs"
	"github.com/iiot-workflow/wfinit/internal/template"
)

// prepareWrite runs before a generated or copied file is written to relPath.
// A file that existed before this run is reported as overwritten and, with
// backup enabled, copied into state-history/backup-<timestamp>/ first.
func (i *Initializer) prepareWrite(relPath string) error {
	if i.written[relPath] {
		return nil
	}

	dest := filepath.Join(i.workflowDir, filepath.FromSlash(relPath))
	info, err := os.Stat(dest)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", dest, err)
	}
	if !info.Mode().IsRegular() {
		return nil
	}

	i.result.OverwrittenFiles = append(i.result.OverwrittenFiles, relPath)
	i.logger.Warn("overwriting existing file", "path", relPath, "backup", i.backup)
	i.reporter.FileOverwritten(relPath)

	if !i.backup {
		return nil
	}
	return i.backupFile(relPath)
}

// backupFile copies relPath into this run's backup directory, creating the
// directory name on first use.
func (i *Initializer) backupFile(relPath string) error {
	if i.result.BackupPath == "" {
		name := defs.BackupDirPrefix + i.now().Format(defs.BackupTimestampLayout)
		i.result.BackupPath = filepath.Join(i.workflowDir, defs.StateHistorySubdir, name)
	}

	copier := template.NewCopier(os.DirFS(i.workflowDir), i.result.BackupPath)
	if err := copier.Copy(relPath, relPath); err != nil {
		return fmt.Errorf("backup %s: %w", relPath, err)
	}
	i.logger.Info("backed up file", "path", relPath, "backup", i.result.BackupPath)
	return nil
}
