package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/embedscript/internal/app"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile [FILE]",
	Short: "Compile a template into a card",
	Long: `Compile an embed-script template and print the result.

The template is read from FILE, or from stdin when FILE is omitted or "-".
Placeholders such as {user.name} are filled from --context and --set.

Examples:
  embedscript compile welcome.embed
  embedscript compile welcome.embed --context ctx.yaml --set user.name=alice
  echo '$v{title: Hi}' | embedscript compile --format json --materialize`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

// Compile command flags
var (
	compileContext     string
	compileSet         []string
	compileMaterialize bool
	compileFormat      string
)

func init() {
	compileCmd.Flags().StringVar(&compileContext, FlagContext, "", DescContext)
	compileCmd.Flags().StringArrayVar(&compileSet, FlagSet, nil, DescSet)
	compileCmd.Flags().BoolVar(&compileMaterialize, FlagMaterialize, false, DescMaterialize)
	compileCmd.Flags().StringVarP(&compileFormat, FlagFormat, "f", "", DescFormat)
}

func runCompile(cmd *cobra.Command, args []string) error {
	format := resolveFormat(compileFormat)
	if err := ValidateFormat(format); err != nil {
		return err
	}

	data, _, err := readInput(args)
	if err != nil {
		return err
	}
	text := string(data)
	if !app.LooksLikeTemplate(text) {
		printWarning("input does not start with {embed} or $v")
	}

	values, err := contextValues(compileContext, compileSet)
	if err != nil {
		return err
	}

	// Call app layer
	result, err := app.CompileTemplate(cmd.Context(), app.CompileTemplateOptions{
		Template:    text,
		Values:      values,
		Materialize: compileMaterialize || globalConfig.Compiler.Materialize,
		Compiler:    newCompiler(),
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Compile failed: %v", err))
		return err
	}

	if format == FormatJSON {
		return printJSON(result)
	}
	printArtifact(&result.Artifact)
	return nil
}
