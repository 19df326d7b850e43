package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tacogips/embedscript/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP preview server",
	Long: `Serve compile, check and serialize over HTTP.

Routes:
  GET  /health
  POST /compile    {"template": "...", "values": {...}, "materialize": true}
  POST /check      {"template": "...", "values": {...}}
  POST /serialize  Discord message or compile output JSON

Examples:
  embedscript serve
  embedscript serve --addr :9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, FlagAddr, "", DescAddr)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = globalConfig.Server.Addr()
	}

	a := server.New(server.Options{
		Compiler:  newCompiler(),
		Logger:    server.NewLogger(globalConfig.Server.LogFormat, nil),
		BodyLimit: globalConfig.Server.BodyLimitKB * 1024,
	})

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printInfo(fmt.Sprintf("Listening on %s", addr))
	if err := server.Run(ctx, a, addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	printSuccess("Server stopped")
	return nil
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
