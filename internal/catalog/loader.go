package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
)

// DescriptionFile is the per-category file holding script descriptions.
const DescriptionFile = "desc.toml"

// ScriptExt is the extension a file needs to be listed.
const ScriptExt = ".sh"

type descriptionFile struct {
	Scripts map[string]struct {
		Description string `toml:"description"`
	} `toml:"scripts"`
}

// Load walks root and builds a catalog: every non-hidden subdirectory is a
// category and every *.sh file directly inside it is a script. Categories
// without scripts are skipped.
func Load(root string) (*Catalog, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("scripts directory not set")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scripts directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("scripts directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scripts directory %s is not a directory", abs)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read scripts directory: %w", err)
	}
	categories := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || hidden(entry.Name()) {
			continue
		}
		categories = append(categories, entry.Name())
	}
	sort.Strings(categories)

	realRoot, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve scripts directory: %w", err)
	}

	var scripts []Script
	for _, category := range categories {
		list, err := loadCategory(abs, realRoot, category)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, list...)
	}
	return New(abs, scripts...), nil
}

func loadCategory(root, realRoot, category string) ([]Script, error) {
	dir, err := securejoin.SecureJoin(root, category)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", category, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read category %s: %w", category, err)
	}
	descriptions, err := loadDescriptions(filepath.Join(dir, DescriptionFile))
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", category, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if hidden(name) || !strings.HasSuffix(name, ScriptExt) {
			continue
		}
		if entry.IsDir() {
			continue
		}
		if entry.Type()&fs.ModeSymlink == 0 && !entry.Type().IsRegular() {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	scripts := make([]Script, 0, len(names))
	for _, name := range names {
		if !insideRoot(realRoot, filepath.Join(category, name)) {
			continue
		}
		scripts = append(scripts, Script{
			Name:        name,
			Category:    category,
			Path:        filepath.Join(root, category, name),
			Description: descriptions[name],
		})
	}
	return scripts, nil
}

// insideRoot reports whether rel names a regular file whose symlink chain
// stays within root. Dangling links and links leaving root are rejected.
// Callers keep the unresolved path so two links to one file stay distinct.
func insideRoot(root, rel string) bool {
	clamped, err := securejoin.SecureJoin(root, rel)
	if err != nil {
		return false
	}
	resolved, err := filepath.EvalSymlinks(filepath.Join(root, rel))
	if err != nil {
		return false
	}
	if resolved != clamped {
		// absolute links are clamped differently but may still land inside
		within, err := filepath.Rel(root, resolved)
		if err != nil || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
			return false
		}
	}
	info, err := os.Stat(resolved)
	return err == nil && info.Mode().IsRegular()
}

func loadDescriptions(path string) (map[string]string, error) {
	var file descriptionFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w", DescriptionFile, err)
	}
	out := make(map[string]string, len(file.Scripts))
	for name, entry := range file.Scripts {
		out[name] = strings.TrimSpace(entry.Description)
	}
	return out, nil
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
