package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/skel/internal/app"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored templates",
	Long: `List the templates in the store, sorted by name.

Examples:
  skel list
  skel list --groups go,web
  skel list --long`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listGroups []string
	listLong   bool
)

func init() {
	listCmd.Flags().StringSliceVarP(&listGroups, FlagGroups, "g", nil, DescGroups)
	listCmd.Flags().BoolVarP(&listLong, FlagLong, "l", false, DescLong)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	entries, err := a.List(app.ListOptions{Groups: listGroups})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		printInfo("No templates found")
		return nil
	}

	if !listLong {
		for _, e := range entries {
			printData(e.Name)
		}
		return nil
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	for _, e := range entries {
		groups := strings.Join(e.Groups, ",")
		if groups == "" {
			groups = "-"
		}
		printData(fmt.Sprintf("%s%s  %-20s  %s",
			nameStyle.Sprint(e.Name), strings.Repeat(" ", width-len(e.Name)), groups, e.Destination))
	}
	return nil
}
