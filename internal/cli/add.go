package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/skel/internal/app"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new template in the editor",
	Long: `Create a new template and open it in the editor.

The template is stored only when the edited text parses. Without a name
the name is asked for interactively.

Examples:
  skel add license
  skel add --with-template gitignore
  skel add --from-file ./Makefile makefile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addWithTemplate bool
	addFromFile     string
)

func init() {
	addCmd.Flags().BoolVar(&addWithTemplate, FlagWithTemplate, false, DescWithTemplate)
	addCmd.Flags().StringVar(&addFromFile, FlagFromFile, "", DescFromFile)
	addCmd.MarkFlagsMutuallyExclusive(FlagWithTemplate, FlagFromFile)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	opts := app.AddOptions{
		WithTemplate: addWithTemplate,
		FromFile:     addFromFile,
	}
	if len(args) == 1 {
		opts.Name = args[0]
	}

	result, err := a.Add(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Added template %s (%s)", nameStyle.Sprint(result.Name), result.Path))
	return nil
}
