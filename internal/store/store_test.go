package store

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/skel/internal/template"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	return s
}

func groupTemplate(groups string) string {
	return "---\ngroups: " + groups + "\n---\nbody\n"
}

func names(t *testing.T, templates []*template.Template) []string {
	t.Helper()
	var out []string
	for _, tmpl := range templates {
		name, err := tmpl.Name()
		require.NoError(t, err)
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func TestLoad_CreatesDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "store")

	s, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, root, s.Root())
	assert.Equal(t, DefaultExtension, s.Extension())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoad_ExistingDirectory(t *testing.T) {
	root := t.TempDir()
	_, err := Load(root)
	require.NoError(t, err)
}

func TestLoad_PathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := Load(file)
	require.Error(t, err)
	assert.True(t, IsDirectoryUnavailable(err))
}

func TestLoad_EmptyRoot(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.True(t, IsDirectoryUnavailable(err))
}

func TestLoad_WithExtension(t *testing.T) {
	s, err := Load(t.TempDir(), WithExtension(".tmpl"))
	require.NoError(t, err)
	assert.Equal(t, "tmpl", s.Extension())

	require.NoError(t, s.Write("x", "---\n---\nbody"))
	_, err = os.Stat(filepath.Join(s.Root(), "x.tmpl"))
	require.NoError(t, err)
}

func TestList_GroupFiltering(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("one", groupTemplate("[web, frontend]")))
	require.NoError(t, s.Write("two", groupTemplate("[backend, api]")))
	require.NoError(t, s.Write("three", groupTemplate("[web, backend]")))

	tests := []struct {
		name   string
		groups []string
		want   []string
	}{
		{name: "no filter", groups: nil, want: []string{"one", "three", "two"}},
		{name: "empty filter", groups: []string{}, want: []string{"one", "three", "two"}},
		{name: "web", groups: []string{"web"}, want: []string{"one", "three"}},
		{name: "api or backend", groups: []string{"api", "backend"}, want: []string{"three", "two"}},
		{name: "nonexistent", groups: []string{"nope"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			templates, err := s.List(tt.groups)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(t, templates))
		})
	}
}

func TestList_ExcludesTemplatesWithoutGroups(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("tagged", groupTemplate("[web]")))
	require.NoError(t, s.Write("untagged", "---\nname: x\n---\nbody"))
	require.NoError(t, s.Write("scalar", groupTemplate("web")))

	templates, err := s.List([]string{"web"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tagged"}, names(t, templates))
}

func TestList_StableOrder(t *testing.T) {
	s := newStore(t)
	for _, n := range []string{"c", "a", "b"} {
		require.NoError(t, s.Write(n, "---\n---\n"+n))
	}

	first, err := s.List(nil)
	require.NoError(t, err)
	second, err := s.List(nil)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Path(), second[i].Path())
	}
}

func TestList_WalksSubdirectories(t *testing.T) {
	s := newStore(t)
	sub := filepath.Join(s.Root(), "web", "css")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "reset.skel"), []byte("---\n---\n* {}"), 0644))

	exists, err := s.Exists("reset")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestList_FailsFastOnMalformedTemplate(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("good", "---\n---\nbody"))
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "bad.skel"), []byte("no header"), 0644))

	_, err := s.List(nil)
	require.Error(t, err)
	assert.True(t, template.IsParseError(err, template.MissingHeaderStart))
	assert.Contains(t, err.Error(), "bad.skel")

	_, err = s.Exists("good")
	require.Error(t, err, "Exists walks the whole store and must surface the parse error")
}

func TestWrite_OverwriteSemantics(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("t", "---\n---\ncontent A"))
	require.NoError(t, s.Write("t", "---\n---\ncontent B"))

	templates, err := s.List(nil)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	name, err := templates[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "t", name)
	assert.Equal(t, "---\n---\ncontent B", templates[0].Content())
}

func TestWrite_OverwritesTemplateInSubdirectory(t *testing.T) {
	s := newStore(t)
	sub := filepath.Join(s.Root(), "go")
	require.NoError(t, os.MkdirAll(sub, 0755))
	original := filepath.Join(sub, "main.skel")
	require.NoError(t, os.WriteFile(original, []byte("---\n---\nold"), 0644))

	require.NoError(t, s.Write("main", "---\n---\nnew"))

	data, err := os.ReadFile(original)
	require.NoError(t, err)
	assert.Equal(t, "---\n---\nnew", string(data))

	_, err = os.Stat(filepath.Join(s.Root(), "main.skel"))
	assert.True(t, os.IsNotExist(err), "no duplicate should be created at the root")
}

func TestWrite_InvalidNames(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
		t.Run(name, func(t *testing.T) {
			err := s.Write(name, "---\n---\nbody")
			require.Error(t, err)
			assert.True(t, isType(err, InvalidTemplateName))
		})
	}
}

func TestExists_AfterRemove(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("t", "---\n---\nbody"))

	exists, err := s.Exists("t")
	require.NoError(t, err)
	assert.True(t, exists)

	tmpl, err := s.Find("t")
	require.NoError(t, err)
	require.NoError(t, s.Remove(tmpl))

	exists, err = s.Exists("t")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists_AfterExternalDelete(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("t", "---\n---\nbody"))
	require.NoError(t, os.Remove(filepath.Join(s.Root(), "t.skel")))

	exists, err := s.Exists("t")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFind_NotFound(t *testing.T) {
	s := newStore(t)
	_, err := s.Find("missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRemove_MissingFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("t", "---\n---\nbody"))
	tmpl, err := s.Find("t")
	require.NoError(t, err)

	require.NoError(t, s.Remove(tmpl))
	err = s.Remove(tmpl)
	require.Error(t, err)
	assert.True(t, isType(err, RemoveFailed))
}

func TestRename(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("old", "---\nk: v\n---\nbody"))
	require.NoError(t, s.Write("taken", "---\n---\nother"))

	tmpl, err := s.Find("old")
	require.NoError(t, err)

	err = s.Rename(tmpl, "taken")
	require.Error(t, err)
	assert.True(t, IsCollision(err))

	require.NoError(t, s.Rename(tmpl, "new"))

	got, err := s.Names(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "taken"}, got)

	renamed, err := s.Find("new")
	require.NoError(t, err)
	assert.Equal(t, "---\nk: v\n---\nbody", renamed.Content())
}

func TestRename_KeepsDirectory(t *testing.T) {
	s := newStore(t)
	sub := filepath.Join(s.Root(), "docs")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "readme.skel"), []byte("---\n---\n# hi"), 0644))

	tmpl, err := s.Find("readme")
	require.NoError(t, err)
	require.NoError(t, s.Rename(tmpl, "README"))

	_, err = os.Stat(filepath.Join(sub, "README.skel"))
	require.NoError(t, err)
}

func TestRename_SameNameIsNoop(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("same", "---\n---\nbody"))
	tmpl, err := s.Find("same")
	require.NoError(t, err)

	require.NoError(t, s.Rename(tmpl, "same"))

	exists, err := s.Exists("same")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMutationDoesNotAffectStore(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("t", "---\nk: v\n---\n{% k %}"))

	tmpl, err := s.Find("t")
	require.NoError(t, err)
	tmpl.ReplaceVariable("k", template.StringValue("changed"))

	fresh, err := s.Find("t")
	require.NoError(t, err)
	out, err := fresh.Substitute()
	require.NoError(t, err)
	assert.Equal(t, "v", out)
}

func TestCheckAvailable(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("taken", "---\n---\nbody"))

	assert.NoError(t, s.CheckAvailable("free"))
	assert.True(t, IsCollision(s.CheckAvailable("taken")))
	assert.True(t, isType(s.CheckAvailable("a/b"), InvalidTemplateName))
}

func TestLoad_SymlinkedRoot(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "dotfiles", "skel")
	require.NoError(t, os.MkdirAll(target, 0755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	s, err := Load(link)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, want, s.Root())

	require.NoError(t, s.Write("t", "---\n---\nbody"))

	templates, err := s.List(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, names(t, templates))

	exists, err := s.Exists("t")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = os.Stat(filepath.Join(target, "t.skel"))
	require.NoError(t, err)
}

func TestLoad_DanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))

	_, err := Load(link)
	require.Error(t, err)
	assert.True(t, IsDirectoryUnavailable(err))
}

func writeDuplicateStems(t *testing.T, s *Store) (first, second string) {
	t.Helper()
	first = filepath.Join(s.Root(), "a", "t.skel")
	second = filepath.Join(s.Root(), "b", "t.skel")
	for path, body := range map[string]string{first: "AAA", second: "BBB"} {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("---\n---\n"+body), 0644))
	}
	return first, second
}

func TestPathFor_DuplicateStemsFirstInPathOrder(t *testing.T) {
	s := newStore(t)
	first, _ := writeDuplicateStems(t, s)

	path, err := s.PathFor("t")
	require.NoError(t, err)
	assert.Equal(t, first, path)

	tmpl, err := s.Find("t")
	require.NoError(t, err)
	assert.Equal(t, first, tmpl.Path())
}

func TestWriteTemplate_WritesLoadedFile(t *testing.T) {
	s := newStore(t)
	first, second := writeDuplicateStems(t, s)

	templates, err := s.List(nil)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	require.Equal(t, second, templates[1].Path())

	require.NoError(t, s.WriteTemplate(templates[1], "---\n---\nBBB edited"))

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "---\n---\nBBB edited", string(data))

	data, err = os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "---\n---\nAAA", string(data))
}

func TestWriteTemplate_DifferentExtensionSameStem(t *testing.T) {
	s := newStore(t)
	plain := filepath.Join(s.Root(), "t.skel")
	long := filepath.Join(s.Root(), "t.skeleton")
	require.NoError(t, os.WriteFile(plain, []byte("---\n---\nplain"), 0644))
	require.NoError(t, os.WriteFile(long, []byte("---\n---\nlong"), 0644))

	templates, err := s.List(nil)
	require.NoError(t, err)
	require.Len(t, templates, 2)

	var picked *template.Template
	for _, tmpl := range templates {
		if tmpl.Path() == long {
			picked = tmpl
		}
	}
	require.NotNil(t, picked)
	require.NoError(t, s.WriteTemplate(picked, "---\n---\nlong edited"))

	data, err := os.ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, "---\n---\nplain", string(data))
	data, err = os.ReadFile(long)
	require.NoError(t, err)
	assert.Equal(t, "---\n---\nlong edited", string(data))
}
