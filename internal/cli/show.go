package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/skel/internal/app"
)

var showCmd = &cobra.Command{
	Use:     "show [name]",
	Aliases: []string{"cat"},
	Short:   "Print a template",
	Long: `Print a template's body with its variables substituted, or the stored
file with --raw.

Examples:
  skel show license
  skel show license --set author="Jane Doe"
  skel show --raw license`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var (
	showGroups []string
	showRaw    bool
	showSet    []string
)

func init() {
	showCmd.Flags().StringSliceVarP(&showGroups, FlagGroups, "g", nil, DescGroups)
	showCmd.Flags().BoolVar(&showRaw, FlagRaw, false, DescRaw)
	showCmd.Flags().StringArrayVarP(&showSet, FlagSet, "s", nil, DescSet)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	opts := app.ShowOptions{
		Groups: showGroups,
		Raw:    showRaw,
		Set:    showSet,
	}
	if len(args) == 1 {
		opts.Name = args[0]
	}

	out, err := a.Show(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printData(out)
	return nil
}
