package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tacogips/skel/internal/app"
	"github.com/tacogips/skel/internal/config"
	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/generator"
	"github.com/tacogips/skel/internal/runner"
	"github.com/tacogips/skel/internal/selector"
	"github.com/tacogips/skel/internal/store"
	"github.com/tacogips/skel/internal/tui"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalStore   string
	globalEditor  string
	globalConfig  string
)

// Interactive collaborators. Tests replace them with fakes.
var (
	newPicker   = func() selector.Picker { return tui.NewPicker() }
	newPrompter = func() app.Prompter { return NewSurveyPrompter() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skel",
	Short: "Personal template manager",
	Long: `skel stores reusable text files ("templates") with a YAML header and
{% name %} placeholders, and applies them into the current project.

A template file looks like:

  ---
  filename: LICENSE
  author: Jane Doe
  groups: [oss]
  ---
  Copyright {% author %}

Templates live in a single directory (default ~/.skel, or --store,
$SKEL_STORE, or "store" in the config file).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
		setColor(colorEnabled(globalNoColor, true))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalStore, FlagStore, "", DescStore)
	rootCmd.PersistentFlags().StringVar(&globalEditor, FlagEditor, "", DescEditor)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the --config file, which must exist, or the default
// config file when present.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if globalConfig != "" {
		cfg, err = loader.Load(globalConfig)
	} else {
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath())
	}
	if err != nil {
		return nil, err
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp loads configuration and wires the workflows to the real store,
// picker, prompter, editor and generator.
func newApp() (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	setColor(colorEnabled(globalNoColor, cfg.Output.Color))

	root := config.ResolveStore(cfg, globalStore)
	s, err := store.Load(root, store.WithExtension(cfg.Extension))
	if err != nil {
		return nil, err
	}

	r := runner.New()
	return &app.App{
		Store:     s,
		Selector:  selector.New(newPicker()),
		Prompter:  newPrompter(),
		Editor:    app.NewExternalEditor(config.ResolveEditor(cfg, globalEditor), r),
		Generator: generator.NewGenerator(r),
	}, nil
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(stderr, "%s %v\n", errorMark.Sprint("Error:"), err)
}
