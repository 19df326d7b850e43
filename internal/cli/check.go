package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/embedscript/internal/app"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [PATH]",
	Short: "Check templates for errors and warnings",
	Long: `Compile templates and report problems without printing the cards.

PATH is a template file or a directory of *.embed files (default ".").
Unknown directives are reported with suggestions.

Examples:
  embedscript check welcome.embed
  embedscript check templates/ --recursive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

// Check command flags
var (
	checkRecursive bool
	checkContext   string
	checkSet       []string
	checkFormat    string
)

func init() {
	checkCmd.Flags().BoolVarP(&checkRecursive, FlagRecursive, "r", false, DescRecursive)
	checkCmd.Flags().StringVar(&checkContext, FlagContext, "", DescContext)
	checkCmd.Flags().StringArrayVar(&checkSet, FlagSet, nil, DescSet)
	checkCmd.Flags().StringVarP(&checkFormat, FlagFormat, "f", "", DescFormat)
}

func runCheck(cmd *cobra.Command, args []string) error {
	format := resolveFormat(checkFormat)
	if err := ValidateFormat(format); err != nil {
		return err
	}

	// Default to current directory if no path specified
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	values, err := contextValues(checkContext, checkSet)
	if err != nil {
		return err
	}

	// Call app layer
	result, err := app.CheckTemplate(cmd.Context(), app.CheckTemplateOptions{
		Path:      path,
		Recursive: checkRecursive,
		Values:    values,
		Compiler:  newCompiler(),
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Template check failed: %v", err))
		return err
	}

	if format == FormatJSON {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		printCheckResult(result)
	}

	if result.FilesWithErrors > 0 {
		return fmt.Errorf("%d template(s) with errors", result.FilesWithErrors)
	}
	return nil
}

func printCheckResult(result *app.CheckResult) {
	printHeader("Check Results")

	if result.FilesChecked == 0 {
		printWarning("No template files found (*" + app.TemplateExtension + ")")
		return
	}
	printInfo(fmt.Sprintf("Templates checked: %d", result.FilesChecked))
	printSeparator()

	for _, r := range result.Reports {
		if !r.Valid {
			printErrorMsg(fmt.Sprintf("%s - %s", r.File, r.Error))
			continue
		}
		for _, w := range r.Warnings {
			msg := fmt.Sprintf("%s - %s", r.File, w.Message)
			if len(w.Suggestions) > 0 {
				msg += fmt.Sprintf(" (did you mean %q?)", w.Suggestions[0])
			}
			printWarning(msg)
		}
	}

	if result.FilesWithErrors > 0 {
		printSeparator()
		printErrorMsg(fmt.Sprintf("Validation failed: %d template(s) with errors", result.FilesWithErrors))
		return
	}
	printSuccess("All templates are valid")
}
