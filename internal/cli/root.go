package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tacogips/embedscript/internal/config"
	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/version"
)

// Global flags
var (
	globalConfigPath string
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
)

// globalConfig is loaded before any subcommand runs.
var globalConfig = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "embedscript",
	Short: "Compile embed-script templates into Discord cards",
	Long: `embedscript compiles embed-script templates into rich cards.

A template is a sequence of directives:

  {embed}$v{title: Hello {user.name}}$v{field: Rank && value: 1 && inline: true}

Use "embedscript compile" to render a template, "embedscript check" to lint
templates, "embedscript serialize" to turn a delivered message back into a
template, "embedscript new" to write a template interactively and
"embedscript serve" to run the HTTP preview server.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// SetVersionInfo records build information.
func SetVersionInfo(v, commit, date string) {
	version.Version = v
	version.GitCommit = commit
	version.BuildDate = date
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serializeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env and the configuration file, then applies global flags.
func setup(cmd *cobra.Command, args []string) error {
	// Set debug mode
	debug.SetDebug(globalDebug)
	debug.SetNoColor(globalNoColor)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		debug.Debug("[cli] ignoring .env: %v", err)
	}

	path := config.ResolvePath(globalConfigPath)
	loader := config.NewLoader()
	var (
		cfg *config.Config
		err error
	)
	if globalConfigPath != "" {
		cfg, err = loader.Load(path)
	} else {
		cfg, err = loader.LoadOrDefault(path)
	}
	if err != nil {
		return err
	}
	globalConfig = cfg

	if !cfg.Output.Color {
		globalNoColor = true
		debug.SetNoColor(true)
	}
	if cfg.Output.Quiet {
		globalQuiet = true
	}
	configureStyles()
	return nil
}

// newCompiler builds a compiler from the loaded configuration.
func newCompiler() *compiler.Compiler {
	return compiler.New(globalConfig.CompilerOptions())
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
