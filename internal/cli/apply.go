package cli

import (
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/tacogips/skel/internal/app"
	"github.com/tacogips/skel/internal/generator"
)

var applyCmd = &cobra.Command{
	Use:   "apply [name...]",
	Short: "Materialize templates into the current directory",
	Long: `Render templates and write them to their destination file.

The destination is the template's "filename" variable, or the template name,
resolved inside the output directory. When the template has a "command"
variable it runs afterwards with the destination appended.

Without names the templates are picked interactively. With --groups and no
names every template in those groups is applied, unless --fuzzy is given.

Examples:
  skel apply license
  skel apply license --set author="Jane Doe"
  skel apply --groups go --dry-run
  skel apply --groups web --fuzzy --interactive`,
	RunE: runApply,
}

var (
	applyGroups      []string
	applyFuzzy       bool
	applySet         []string
	applyInteractive bool
	applyForce       bool
	applyDryRun      bool
	applyOutput      string
)

func init() {
	applyCmd.Flags().StringSliceVarP(&applyGroups, FlagGroups, "g", nil, DescGroups)
	applyCmd.Flags().BoolVarP(&applyFuzzy, FlagFuzzy, "f", false, DescFuzzy)
	applyCmd.Flags().StringArrayVarP(&applySet, FlagSet, "s", nil, DescSet)
	applyCmd.Flags().BoolVarP(&applyInteractive, FlagInteractive, "i", false, DescInteractive)
	applyCmd.Flags().BoolVar(&applyForce, FlagForce, false, DescForce)
	applyCmd.Flags().BoolVar(&applyDryRun, FlagDryRun, false, DescDryRun)
	applyCmd.Flags().StringVarP(&applyOutput, FlagOutput, "o", "", DescOutput)
}

func runApply(cmd *cobra.Command, args []string) error {
	outputDir, err := ValidateOutputPath(applyOutput)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	result, err := a.Apply(cmd.Context(), app.ApplyOptions{
		Names:       args,
		Groups:      applyGroups,
		Fuzzy:       applyFuzzy,
		Set:         applySet,
		Interactive: applyInteractive,
		Force:       applyForce,
		DryRun:      applyDryRun,
		OutputDir:   outputDir,
	})
	if result != nil {
		for _, res := range result.Results {
			printGenerateResult(res)
		}
	}
	if generator.IsGeneratorError(err, generator.GeneratorDestinationExists) {
		printWarning(fmt.Sprintf("Use --%s to overwrite existing files", FlagForce))
	}
	return err
}

func printGenerateResult(res *generator.GenerateResult) {
	if res.DryRun {
		printHeader(res.Path)
		printData(res.Content)
		printSeparator()
		if res.Existed {
			printWarning("File exists and would be overwritten")
		}
		if len(res.Command) > 0 {
			printProgress(fmt.Sprintf("Would run: %s %s", shellquote.Join(res.Command...), shellquote.Join(res.Path)))
		}
		return
	}

	if res.Existed {
		printSuccess(fmt.Sprintf("Overwrote %s", res.Path))
	} else {
		printSuccess(fmt.Sprintf("Created %s", res.Path))
	}
	if len(res.Command) > 0 {
		printProgress(fmt.Sprintf("Ran: %s", shellquote.Join(res.Command...)))
		if res.CommandOutput != "" {
			printData(res.CommandOutput)
		}
	}
}
