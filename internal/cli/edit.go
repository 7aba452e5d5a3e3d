package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/skel/internal/app"
)

var editCmd = &cobra.Command{
	Use:   "edit [name...]",
	Short: "Edit templates in the editor",
	Long: `Open templates in the editor and store them once they parse.

Without names the templates are picked interactively.

Examples:
  skel edit license
  skel edit --groups go`,
	RunE: runEdit,
}

var editGroups []string

func init() {
	editCmd.Flags().StringSliceVarP(&editGroups, FlagGroups, "g", nil, DescGroups)
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	result, err := a.Edit(cmd.Context(), app.EditOptions{
		Names:  args,
		Groups: editGroups,
	})
	if result != nil {
		for _, name := range result.Edited {
			printSuccess(fmt.Sprintf("Saved %s", nameStyle.Sprint(name)))
		}
	}
	return err
}
