package server

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/tacogips/embedscript/internal/app"
	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/template/parser"
	"github.com/tacogips/embedscript/internal/template/placeholder"
	"github.com/tacogips/embedscript/internal/version"
)

// CompileRequest is the body of POST /compile.
type CompileRequest struct {
	Template    string            `json:"template" validate:"required"`
	Values      map[string]string `json:"values" validate:"omitempty,dive,keys,required,endkeys"`
	Materialize bool              `json:"materialize"`
}

// CheckRequest is the body of POST /check.
type CheckRequest struct {
	Template string            `json:"template" validate:"required"`
	Values   map[string]string `json:"values" validate:"omitempty,dive,keys,required,endkeys"`
}

// handler serves the preview routes.
type handler struct {
	compiler *compiler.Compiler
	validate *validator.Validate
	log      *logrus.Logger
}

func (h *handler) health(c *fiber.Ctx) error {
	return RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"healthy": true,
		"version": version.Version,
	})
}

func (h *handler) compile(c *fiber.Ctx) error {
	req := new(CompileRequest)
	if ok, err := h.parse(c, req); !ok {
		return err
	}

	result, err := app.CompileTemplate(c.UserContext(), app.CompileTemplateOptions{
		Template:    req.Template,
		Values:      tokens(req.Values),
		Materialize: req.Materialize,
		Compiler:    h.compiler,
	})
	if err != nil {
		return h.compileError(c, err)
	}
	return RespondWithJSON(c, fiber.StatusOK, result)
}

func (h *handler) check(c *fiber.Ctx) error {
	req := new(CheckRequest)
	if ok, err := h.parse(c, req); !ok {
		return err
	}

	result, err := app.CheckTemplate(c.UserContext(), app.CheckTemplateOptions{
		Template: req.Template,
		Values:   tokens(req.Values),
		Compiler: h.compiler,
	})
	if err != nil {
		return err
	}
	return RespondWithJSON(c, fiber.StatusOK, result.Reports[0])
}

func (h *handler) serialize(c *fiber.Ctx) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return RespondWithError(c, fiber.StatusBadRequest, "Request body is required")
	}

	text, err := app.SerializeMessage(c.UserContext(), app.SerializeOptions{Data: body})
	if err != nil {
		h.log.Warnf("Error serializing message: %v", err)
		return RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}
	return RespondWithJSON(c, fiber.StatusOK, fiber.Map{"template": text})
}

// parse decodes and validates a JSON body. When it reports false the
// error response has already been written.
func (h *handler) parse(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		h.log.Warnf("Error parsing request body: %v", err)
		return false, RespondWithError(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  FormatValidationErrors(err),
		})
	}
	return true, nil
}

// compileError maps template errors to 422 and everything else to the error handler.
func (h *handler) compileError(c *fiber.Ctx, err error) error {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"kind":    pe.Kind.String(),
			"message": pe.Error(),
		})
	}
	return err
}

func tokens(values map[string]string) placeholder.Values {
	out := make(placeholder.Values, len(values))
	for k, v := range values {
		out[app.Token(k)] = v
	}
	return out
}
