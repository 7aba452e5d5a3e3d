package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/skel/internal/app"
)

var removeCmd = &cobra.Command{
	Use:     "remove [name...]",
	Aliases: []string{"rm"},
	Short:   "Delete templates from the store",
	Long: `Delete templates. Without names the templates are picked interactively;
picking nothing removes nothing.

Examples:
  skel remove license
  skel rm --groups old`,
	RunE: runRemove,
}

var removeGroups []string

func init() {
	removeCmd.Flags().StringSliceVarP(&removeGroups, FlagGroups, "g", nil, DescGroups)
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	result, err := a.Remove(cmd.Context(), app.RemoveOptions{
		Names:  args,
		Groups: removeGroups,
	})
	if result != nil {
		if len(result.Removed) == 0 && err == nil {
			printInfo("Nothing removed")
		}
		for _, name := range result.Removed {
			printSuccess(fmt.Sprintf("Removed %s", nameStyle.Sprint(name)))
		}
	}
	return err
}
