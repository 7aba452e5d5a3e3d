package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultContent is the documented starting point offered by `skel add --with-template`.
const DefaultContent = `---
# This is a special variable that will be used as the template's
# filename when the template is applied in a project.
#
# Example:
#
# filename: justfile
#
# This will create a file called ` + "`justfile`" + ` when the template is applied.

filename:

# This is a variable that lets you specify what command to run on the
# file when it is applied in a project.
#
# Example:
#
# command: chmod +x
#
# This will make the file executable when the template is applied.

command:

# This variable lets you specify which groups this file belongs to so
# you can batch-apply files in the same group.
#
# Example:
#
# groups: ["rust-cli", "utility"]
#
# This will let you apply the file in a project by running either one
# of the following commands:
#
#   $ skel apply --groups rust-cli
#   $ skel apply --groups utility
#   $ skel apply --groups rust-cli --groups utility

groups:

# This is a variable with a random name, you can use it within the template
# by using the ` + "`{% variable %}`" + ` syntax.

variable: foo
---
Place your content here!

Here is a variable interpolation: {% variable %}.
`

// FromFile wraps the content of an existing file in a header whose
// `filename` is the file's base name.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	header, err := yaml.Marshal(map[string]string{VarFilename: filepath.Base(path)})
	if err != nil {
		return "", fmt.Errorf("failed to encode header for %s: %w", path, err)
	}

	var sb strings.Builder
	sb.WriteString(HeaderDelimiter + "\n")
	sb.Write(header)
	sb.WriteString(HeaderDelimiter + "\n")
	sb.Write(data)
	return sb.String(), nil
}
