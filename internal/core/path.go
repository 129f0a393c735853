package core

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

func PageFileName(slug string, pageSuffix string) string {
	return slug + pageSuffix
}

func PagePath(pagesDir string, slug string, pageSuffix string) string {
	return path.Join(pagesDir, PageFileName(slug, pageSuffix))
}

// ImportPath returns the module specifier a page in fromDir uses to import
// target. The extension is dropped and the result always starts with ".".
func ImportPath(fromDir string, target string) (string, error) {
	rel, err := filepath.Rel(filepath.FromSlash(fromDir), filepath.FromSlash(target))
	if err != nil {
		return "", fmt.Errorf("import path from %s to %s: %w", fromDir, target, err)
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, ".") {
		return rel, nil
	}

	return "./" + rel, nil
}

// ImportPathWithExt is ImportPath for targets whose extension the bundler
// needs, such as .astro layouts.
func ImportPathWithExt(fromDir string, target string) (string, error) {
	rel, err := ImportPath(fromDir, target)
	if err != nil {
		return "", err
	}
	return rel + filepath.Ext(target), nil
}
