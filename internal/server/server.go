// Package server exposes the template compiler over HTTP for previews.
package server

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/tacogips/embedscript/internal/app"
	"github.com/tacogips/embedscript/internal/template/compiler"
)

// Options configures the preview server.
type Options struct {
	// Compiler compiles templates. Defaults to compiler.DefaultOptions.
	Compiler *compiler.Compiler
	// Logger receives request logs. Defaults to a JSON logger on stdout.
	Logger *logrus.Logger
	// BodyLimit is the maximum request body in bytes; 0 keeps fiber's default.
	BodyLimit int
}

// New builds the preview app with its routes:
//
//	GET  /health
//	POST /compile
//	POST /check
//	POST /serialize
func New(opts Options) *fiber.App {
	if opts.Compiler == nil {
		opts.Compiler = compiler.New(compiler.DefaultOptions())
	}
	if opts.Logger == nil {
		opts.Logger = NewLogger("json", nil)
	}

	h := &handler{
		compiler: opts.Compiler,
		validate: validator.New(),
		log:      opts.Logger,
	}

	a := fiber.New(fiber.Config{
		AppName:               "embedscript",
		BodyLimit:             opts.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(opts.Logger),
	})

	a.Use(recover.New())
	a.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	a.Use(RequestLogger(opts.Logger))

	a.Get("/health", h.health)
	a.Post("/compile", h.compile)
	a.Post("/check", h.check)
	a.Post("/serialize", h.serialize)

	return a
}

// Run serves a on addr until ctx is canceled.
func Run(ctx context.Context, a *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return a.Shutdown()
	}
}

// errorHandler writes the JSON envelope for errors no handler responded to.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		var appErr *app.AppError
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
		case errors.As(err, &appErr) && appErr.Type == app.ValidationFailed:
			code = fiber.StatusBadRequest
			message = appErr.Error()
		default:
			log.WithError(err).Error("Unhandled error")
		}
		return RespondWithError(c, code, message)
	}
}
