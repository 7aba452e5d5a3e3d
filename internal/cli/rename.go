package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tacogips/skel/internal/app"
)

var renameCmd = &cobra.Command{
	Use:     "rename [name [new-name]]",
	Aliases: []string{"mv"},
	Short:   "Rename templates",
	Long: `Rename templates. Without a new name it is asked for interactively,
and asked again when it is already taken. Entering the same taken name twice
skips the template.

Examples:
  skel rename license license-mit
  skel rename --groups go`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRename,
}

var renameGroups []string

func init() {
	renameCmd.Flags().StringSliceVarP(&renameGroups, FlagGroups, "g", nil, DescGroups)
}

func runRename(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	opts := app.RenameOptions{Groups: renameGroups}
	if len(args) >= 1 {
		opts.Names = args[:1]
	}
	if len(args) == 2 {
		opts.NewName = args[1]
	}

	result, err := a.Rename(cmd.Context(), opts)
	if result != nil {
		olds := make([]string, 0, len(result.Renamed))
		for old := range result.Renamed {
			olds = append(olds, old)
		}
		sort.Strings(olds)
		for _, old := range olds {
			printSuccess(fmt.Sprintf("Renamed %s → %s", old, nameStyle.Sprint(result.Renamed[old])))
		}
		for _, name := range result.Skipped {
			printWarning(fmt.Sprintf("Skipped %s", name))
		}
	}
	return err
}
