package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/embedscript/internal/app"
)

// serializeCmd represents the serialize command
var serializeCmd = &cobra.Command{
	Use:   "serialize [FILE]",
	Short: "Turn a message back into a template",
	Long: `Read a Discord message (or the JSON output of "compile --format json")
and print an equivalent template.

Examples:
  embedscript serialize message.json
  embedscript compile a.embed -f json | embedscript serialize`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSerialize,
}

func runSerialize(cmd *cobra.Command, args []string) error {
	data, _, err := readInput(args)
	if err != nil {
		return err
	}

	text, err := app.SerializeMessage(cmd.Context(), app.SerializeOptions{Data: data})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Serialize failed: %v", err))
		return err
	}

	fmt.Fprintln(stdout, text)
	return nil
}
