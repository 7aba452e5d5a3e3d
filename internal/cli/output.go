package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Output destinations. Tests replace them with buffers.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successMark   = color.New(color.FgGreen)
	warningMark   = color.New(color.FgYellow)
	errorMark     = color.New(color.FgRed)
	progressMark  = color.New(color.FgBlue)
	headerStyle   = color.New(color.FgMagenta, color.Bold)
	separatorLine = color.New(color.FgHiBlack)
	nameStyle     = color.New(color.Bold)
)

// colorEnabled reports whether output should be colored: not disabled by
// flag or config, and stdout is a terminal.
func colorEnabled(noColorFlag, configColor bool) bool {
	if noColorFlag || !configColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func setColor(enabled bool) {
	color.NoColor = !enabled
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", successMark.Sprint("✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", warningMark.Sprint("⚠"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", progressMark.Sprint("→"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", headerStyle.Sprintf("=== %s ===", title))
}

// printSeparator prints a separator line
func printSeparator() {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, separatorLine.Sprint("────────────────────────────────────────"))
}

// printData writes command output that is the point of the command (list,
// show, dry-run content). Quiet mode does not suppress it.
func printData(s string) {
	fmt.Fprint(stdout, s)
	if len(s) > 0 && s[len(s)-1] != '\n' {
		fmt.Fprintln(stdout)
	}
}
