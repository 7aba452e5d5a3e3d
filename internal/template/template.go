// Package template implements the skel template file format: a delimited
// YAML header of variables followed by a body containing {% key %} placeholders.
package template

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/tacogips/skel/internal/debug"
)

// HeaderDelimiter opens and closes the header block.
const HeaderDelimiter = "---"

// Reserved variable names.
const (
	// VarFilename is the destination path used when the template is applied.
	VarFilename = "filename"
	// VarCommand is run after the template is applied, with the destination appended.
	VarCommand = "command"
	// VarGroups lists the groups used to batch-select templates.
	VarGroups = "groups"
)

// placeholderPattern finds {% key %} tokens for discovery only. Substitution
// itself is a literal replacement per variable.
var placeholderPattern = regexp.MustCompile(`\{% (\S+) %\}`)

// Template is a parsed template file. Values returned by the store are
// independent snapshots: mutating one never touches the file on disk.
type Template struct {
	path      string
	content   string
	variables map[string]Value
}

// Parse reads and parses the template file at path.
func Parse(path string) (*Template, error) {
	debug.Debug("[template] Parsing %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newParseError(ReadFailed, path, "failed to read template file", err)
	}

	return ParseContent(path, string(data))
}

// ParseContent parses content as if it had been read from path. The path only
// determines the template name and appears in error messages.
func ParseContent(path, content string) (*Template, error) {
	header, _, err := split(path, content)
	if err != nil {
		return nil, err
	}

	variables := make(map[string]Value)
	if header != "" {
		variables, err = decodeHeader(header)
		if err != nil {
			return nil, newParseError(HeaderDecodeError, path, "failed to decode template header", err)
		}
	}

	debug.Debug("[template] Parsed %s with %d variable(s)", path, len(variables))

	return &Template{
		path:      path,
		content:   content,
		variables: variables,
	}, nil
}

// split separates content into its trimmed header and trimmed body.
func split(path, content string) (header, body string, err error) {
	if !strings.HasPrefix(content, HeaderDelimiter) {
		return "", "", newParseError(MissingHeaderStart, path,
			fmt.Sprintf("template must start with `%s` to specify its header", HeaderDelimiter), nil)
	}

	closeStart, closeEnd, found := findClosingDelimiter(content)
	if !found {
		return "", "", newParseError(MissingHeaderEnd, path,
			fmt.Sprintf("template must contain a header ending with `%s`", HeaderDelimiter), nil)
	}

	header = strings.TrimSpace(content[len(HeaderDelimiter):closeStart])
	body = strings.TrimSpace(content[closeEnd:])

	if body == "" {
		return "", "", newParseError(EmptyBody, path, "file must contain content", nil)
	}

	return header, body, nil
}

// findClosingDelimiter returns the byte range of the first line after the
// opening one that consists solely of the delimiter. end includes the newline.
func findClosingDelimiter(content string) (start, end int, found bool) {
	nl := strings.IndexByte(content, '\n')
	if nl < 0 {
		return 0, 0, false
	}

	pos := nl + 1
	for pos <= len(content) {
		lineEnd := strings.IndexByte(content[pos:], '\n')
		var line string
		next := len(content)
		if lineEnd < 0 {
			line = content[pos:]
		} else {
			line = content[pos : pos+lineEnd]
			next = pos + lineEnd + 1
		}

		if strings.TrimSuffix(line, "\r") == HeaderDelimiter {
			return pos, next, true
		}

		if lineEnd < 0 {
			break
		}
		pos = next
	}

	return 0, 0, false
}

// Path returns the file the template was parsed from.
func (t *Template) Path() string {
	return t.path
}

// Content returns the raw, untrimmed file content.
func (t *Template) Content() string {
	return t.content
}

// Name returns the template name: the file name without its extension.
func (t *Template) Name() (string, error) {
	name := NameFromPath(t.path)
	if name == "" {
		return "", newParseError(InvalidName, t.path, "failed to get template name", nil)
	}
	return name, nil
}

// NameFromPath returns the file stem of path, or "" when there is none.
func NameFromPath(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Body returns the trimmed body of the raw content, without substitution.
func (t *Template) Body() (string, error) {
	_, body, err := split(t.path, t.content)
	return body, err
}

// Variable returns the value of a variable.
func (t *Template) Variable(name string) (Value, bool) {
	v, ok := t.variables[name]
	return v, ok
}

// Variables returns a copy of the current variables.
func (t *Template) Variables() map[string]Value {
	return maps.Clone(t.variables)
}

// Filename returns the `filename` variable.
func (t *Template) Filename() (Value, bool) {
	return t.Variable(VarFilename)
}

// Command returns the `command` variable.
func (t *Template) Command() (Value, bool) {
	return t.Variable(VarCommand)
}

// Groups returns the `groups` sequence. A `groups` variable that is not a
// sequence is reported as absent.
func (t *Template) Groups() ([]string, bool) {
	v, ok := t.variables[VarGroups]
	if !ok {
		return nil, false
	}
	return v.Strings()
}

// InGroups reports whether the template belongs to at least one of groups.
func (t *Template) InGroups(groups []string) bool {
	own, ok := t.Groups()
	if !ok {
		return false
	}
	for _, g := range own {
		if slices.Contains(groups, g) {
			return true
		}
	}
	return false
}

// FreeVariables returns the sorted names of all non-reserved variables.
func (t *Template) FreeVariables() []string {
	var names []string
	for name := range t.variables {
		if IsReserved(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsReserved reports whether name is one of the reserved variables.
func IsReserved(name string) bool {
	switch name {
	case VarFilename, VarCommand, VarGroups:
		return true
	}
	return false
}

// Placeholders returns the sorted, unique keys referenced in the body.
func (t *Template) Placeholders() ([]string, error) {
	body, err := t.Body()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		seen[m[1]] = struct{}{}
	}

	keys := slices.Collect(maps.Keys(seen))
	sort.Strings(keys)
	return keys, nil
}

// ReplaceVariable sets a variable in memory. The file on disk is unchanged.
func (t *Template) ReplaceVariable(name string, value Value) {
	if t.variables == nil {
		t.variables = make(map[string]Value)
	}
	t.variables[name] = value
}

// Substitute returns the body with every {% key %} replaced by the current
// value of key. The body is scanned once, so replacement text is never
// expanded again. Unknown placeholders are left as they are.
func (t *Template) Substitute() (string, error) {
	_, body, err := split(t.path, t.content)
	if err != nil {
		return "", err
	}
	return t.Expand(body), nil
}

// Expand applies the same placeholder replacement as Substitute to s.
func (t *Template) Expand(s string) string {
	keys := slices.Collect(maps.Keys(t.variables))
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, Placeholder(key), t.variables[key].String())
	}

	return strings.NewReplacer(pairs...).Replace(s)
}

// Placeholder returns the token that Substitute replaces for key.
func Placeholder(key string) string {
	return "{% " + key + " %}"
}

// Clone returns an independent copy of the template.
func (t *Template) Clone() *Template {
	return &Template{
		path:      t.path,
		content:   t.content,
		variables: maps.Clone(t.variables),
	}
}
