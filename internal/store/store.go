// Package store implements the directory-backed template repository.
//
// The directory is the single source of truth: every query walks it again and
// parses every regular file it finds. A file that fails to parse makes the
// whole enumeration fail until it is fixed or removed.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/template"
)

// DefaultExtension is the file extension of stored templates.
const DefaultExtension = "skel"

// errStop ends a directory walk early without reporting an error.
var errStop = errors.New("stop walk")

// Store is a template repository rooted at a single directory.
type Store struct {
	root string
	ext  string
}

// Option configures a Store.
type Option func(*Store)

// WithExtension sets the extension used for newly written templates.
func WithExtension(ext string) Option {
	return func(s *Store) {
		s.ext = strings.TrimPrefix(ext, ".")
	}
}

// Load opens the store rooted at root, creating the directory (and parents)
// when it does not exist. A symlinked root is resolved once here.
func Load(root string, opts ...Option) (*Store, error) {
	s := &Store{root: root, ext: DefaultExtension}
	for _, opt := range opts {
		opt(s)
	}

	if root == "" {
		return nil, newStoreError(DirectoryUnavailable, "store directory is not configured", "", nil)
	}
	if s.ext == "" {
		s.ext = DefaultExtension
	}

	info, err := os.Stat(root)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, newStoreError(DirectoryUnavailable, "store path exists and is not a directory", root, nil)
		}
	case errors.Is(err, fs.ErrNotExist):
		debug.Debug("[store] Creating store directory: %s", root)
		if err := os.MkdirAll(root, 0755); err != nil {
			return nil, newStoreError(DirectoryUnavailable, "failed to create store directory", root, err)
		}
	default:
		return nil, newStoreError(DirectoryUnavailable, "failed to access store directory", root, err)
	}

	// WalkDir does not descend into a symlinked root.
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, newStoreError(DirectoryUnavailable, "failed to resolve store directory", root, err)
	}
	if resolved != root {
		debug.Debug("[store] Store directory %s resolves to %s", root, resolved)
	}
	s.root = resolved

	debug.Debug("[store] Loaded store at %s (extension: %s)", root, s.ext)
	return s, nil
}

// Root returns the store directory.
func (s *Store) Root() string {
	return s.root
}

// Extension returns the extension used for stored templates, without the dot.
func (s *Store) Extension() string {
	return s.ext
}

// List parses every template in the store. When groups is non-empty only
// templates belonging to at least one of them are returned. Templates are
// returned in lexical path order.
func (s *Store) List(groups []string) ([]*template.Template, error) {
	defer debug.DebugDuration("[store] List", time.Now())

	var templates []*template.Template
	err := s.walk(func(path string) error {
		t, err := template.Parse(path)
		if err != nil {
			return err
		}
		if len(groups) > 0 && !t.InGroups(groups) {
			return nil
		}
		templates = append(templates, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	debug.Debug("[store] Listed %d template(s) (groups: %v)", len(templates), groups)
	return templates, nil
}

// Names returns the sorted names of the templates matching groups.
func (s *Store) Names(groups []string) ([]string, error) {
	templates, err := s.List(groups)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(templates))
	for _, t := range templates {
		name, err := t.Name()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a template named name is in the store.
func (s *Store) Exists(name string) (bool, error) {
	_, err := s.Find(name)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckAvailable returns a NameCollision error when a template named name
// already exists.
func (s *Store) CheckAvailable(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	exists, err := s.Exists(name)
	if err != nil {
		return err
	}
	if exists {
		return newStoreError(NameCollision, fmt.Sprintf("template %q already exists", name), s.root, nil)
	}
	return nil
}

// Find returns the template named name.
func (s *Store) Find(name string) (*template.Template, error) {
	templates, err := s.List(nil)
	if err != nil {
		return nil, err
	}

	for _, t := range templates {
		n, err := t.Name()
		if err != nil {
			return nil, err
		}
		if n == name {
			return t, nil
		}
	}

	return nil, newStoreError(TemplateNotFound, fmt.Sprintf("template %q not found", name), s.root, nil)
}

// PathFor returns the file that holds (or would hold) the template named
// name: an existing file with that stem anywhere under the root, otherwise
// <root>/<name>.<extension>.
func (s *Store) PathFor(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	var found string
	err := s.walk(func(path string) error {
		if template.NameFromPath(path) == name {
			found = path
			return errStop
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found != "" {
		return found, nil
	}

	return filepath.Join(s.root, name+"."+s.ext), nil
}

// Write stores content under name, replacing any existing template of that
// name. The file is written in place.
func (s *Store) Write(name, content string) error {
	path, err := s.PathFor(name)
	if err != nil {
		return err
	}

	return s.writeFile(path, content)
}

// WriteTemplate replaces the content of the file t was loaded from. Unlike
// Write it never picks another file that shares t's stem.
func (s *Store) WriteTemplate(t *template.Template, content string) error {
	return s.writeFile(t.Path(), content)
}

func (s *Store) writeFile(path, content string) error {
	debug.Debug("[store] Writing %s (%d bytes)", path, len(content))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return newStoreError(WriteFailed, "failed to create template directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return newStoreError(WriteFailed, "failed to write template", path, err)
	}
	return nil
}

// Remove deletes the template's file.
func (s *Store) Remove(t *template.Template) error {
	debug.Debug("[store] Removing %s", t.Path())

	if err := os.Remove(t.Path()); err != nil {
		return newStoreError(RemoveFailed, "failed to remove template", t.Path(), err)
	}
	return nil
}

// Rename moves t to newName, keeping it in the same directory.
func (s *Store) Rename(t *template.Template, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}

	oldName, err := t.Name()
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}

	if err := s.CheckAvailable(newName); err != nil {
		return err
	}

	content, err := os.ReadFile(t.Path())
	if err != nil {
		return newStoreError(WriteFailed, "failed to read template for rename", t.Path(), err)
	}

	target := filepath.Join(filepath.Dir(t.Path()), newName+"."+s.ext)
	debug.Debug("[store] Renaming %s -> %s", t.Path(), target)

	if err := s.writeFile(target, string(content)); err != nil {
		return err
	}
	return s.Remove(t)
}

// ValidateName checks that name can be used as a template file stem.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return newStoreError(InvalidTemplateName, "template name cannot be empty", "", nil)
	case name == "." || name == "..":
		return newStoreError(InvalidTemplateName, fmt.Sprintf("invalid template name %q", name), "", nil)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return newStoreError(InvalidTemplateName,
			fmt.Sprintf("template name %q must not contain path separators", name), "", nil)
	case strings.ContainsRune(name, 0):
		return newStoreError(InvalidTemplateName, "template name contains a null byte", "", nil)
	}
	return nil
}

// walk calls fn for every regular file under the root, in lexical order.
func (s *Store) walk(fn func(path string) error) error {
	debug.Debug("[store] Walking %s", s.root)

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return newStoreError(WalkFailed, "failed to read store directory", path, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return fn(path)
	})
	if errors.Is(err, errStop) {
		return nil
	}
	return err
}
