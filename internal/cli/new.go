package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/embedscript/internal/template/placeholder"
	"github.com/tacogips/embedscript/internal/template/serializer"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [FILE]",
	Short: "Create a template interactively",
	Long: `Ask for each part of a message and write the matching template.

The template is written to FILE, or printed when FILE is omitted.
It is compiled once before writing so size limits are caught early.

Examples:
  embedscript new
  embedscript new welcome.embed
  embedscript new welcome.embed --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

var newForce bool

func init() {
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing file")
}

func runNew(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
		if _, err := os.Stat(path); err == nil && !newForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	draft, err := PromptForMessage()
	if err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}

	text := serializer.Serialize(draft.Card, draft.Buttons, draft.Content)
	if _, err := newCompiler().Compile(text, placeholder.Values{}, false); err != nil {
		printErrorMsg(fmt.Sprintf("Template does not compile: %v", err))
		return err
	}

	if path == "" {
		fmt.Fprintln(stdout, text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	printSuccess(fmt.Sprintf("Wrote %s", path))
	return nil
}
