package app

import (
	"context"
	"fmt"
	"os"

	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/template/placeholder"
)

// CompileTemplateOptions holds options for compiling a template.
type CompileTemplateOptions struct {
	// Template is the template text. Read from Path when empty.
	Template string
	// Path is the template file path.
	Path string
	// ContextPath is an optional YAML/JSON context file.
	ContextPath string
	// Values are extra placeholder values; they override ContextPath.
	Values placeholder.Values
	// Materialize includes the Discord message in the result.
	Materialize bool
	// Compiler compiles the template. Defaults to compiler.DefaultOptions.
	Compiler *compiler.Compiler
}

// CompileTemplate compiles a template with its context values.
func CompileTemplate(ctx context.Context, opts CompileTemplateOptions) (*compiler.Result, error) {
	debug.Debug("[app] CompileTemplate: starting")

	text, values, err := prepare(ctx, opts.Template, opts.Path, opts.ContextPath, opts.Values)
	if err != nil {
		return nil, err
	}

	result, err := compilerOrDefault(opts.Compiler).Compile(text, values, opts.Materialize)
	if err != nil {
		return nil, NewCompileError("template did not compile", err)
	}

	debug.Debug("[app] CompileTemplate: completed")
	return result, nil
}

// prepare reads the template and gathers its placeholder values.
func prepare(ctx context.Context, template, path, contextPath string, overrides placeholder.Values) (string, placeholder.Values, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	if template == "" {
		if path == "" {
			return "", nil, NewValidationError("template text or path is required", nil)
		}
		debug.DebugValue("[app] template path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, NewTemplateReadError(fmt.Sprintf("failed to read template %s", path), err)
		}
		template = string(data)
	}

	values, err := LoadContextValues(contextPath)
	if err != nil {
		return "", nil, err
	}
	return template, values.Merge(overrides), nil
}

func compilerOrDefault(c *compiler.Compiler) *compiler.Compiler {
	if c != nil {
		return c
	}
	return compiler.New(compiler.DefaultOptions())
}
