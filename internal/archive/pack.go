// Package archive packs project directories into zip files for manual
// distribution to the platform upload tools.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
)

// Packer builds zip archives from project trees
type Packer struct {
	fs filesystem.FileSystem
}

// NewPacker creates a new Packer
func NewPacker(fs filesystem.FileSystem) *Packer {
	return &Packer{fs: fs}
}

// Pack zips a project's whole directory tree into outDir/<name>.zip and
// returns the archive path. The archive is assembled in memory; project
// trees are a handful of small files.
func (p *Packer) Pack(project *models.Project, outDir string) (string, error) {
	name := project.Name
	if strings.TrimSpace(name) == "" {
		name = filepath.Base(project.RootPath)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	err := p.fs.WalkDir(project.RootPath, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}

		// Never recurse into earlier archives
		if strings.EqualFold(filepath.Ext(path), ".zip") {
			return nil
		}

		rel, relErr := filepath.Rel(project.RootPath, path)
		if relErr != nil {
			return relErr
		}

		data, readErr := p.fs.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", path, readErr)
		}

		w, createErr := zw.Create(filepath.ToSlash(filepath.Join(name, rel)))
		if createErr != nil {
			return createErr
		}
		_, writeErr := w.Write(data)
		return writeErr
	})
	if err != nil {
		zw.Close()
		return "", fmt.Errorf("failed to pack %s: %w", project.RootPath, err)
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize archive: %w", err)
	}

	zipPath := filepath.Join(outDir, name+".zip")
	if err := p.fs.WriteFile(zipPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}

	return zipPath, nil
}
