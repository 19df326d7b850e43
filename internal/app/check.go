package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/template/parser"
	"github.com/tacogips/embedscript/internal/template/placeholder"
)

// TemplateExtension is the file extension of template files found in directories.
const TemplateExtension = ".embed"

// CheckTemplateOptions holds options for template checking.
type CheckTemplateOptions struct {
	// Template is template text to check. When set, Path is ignored.
	Template string
	// Path is the file or directory path to check.
	Path string
	// Recursive indicates whether to check subdirectories.
	Recursive bool
	// ContextPath is an optional YAML/JSON context file.
	ContextPath string
	// Values are extra placeholder values.
	Values placeholder.Values
	// Compiler checks the templates. Defaults to compiler.DefaultOptions.
	Compiler *compiler.Compiler
}

// CheckResult holds the results of template checking.
type CheckResult struct {
	// FilesChecked is the number of templates checked.
	FilesChecked int `json:"files_checked"`
	// FilesWithErrors is the number of templates that did not compile.
	FilesWithErrors int `json:"files_with_errors"`
	// Reports holds one report per template, in walk order.
	Reports []FileReport `json:"reports"`
}

// FileReport is the check report of one template.
type FileReport struct {
	// File is the template path; empty for inline text.
	File string `json:"file,omitempty"`
	*compiler.CheckReport
}

// CheckTemplate checks templates for errors and warnings. A directory is
// scanned for TemplateExtension files; hidden entries are skipped.
func CheckTemplate(ctx context.Context, opts CheckTemplateOptions) (*CheckResult, error) {
	result := &CheckResult{Reports: []FileReport{}}
	c := compilerOrDefault(opts.Compiler)

	values, err := LoadContextValues(opts.ContextPath)
	if err != nil {
		return nil, err
	}
	values = values.Merge(opts.Values)

	if opts.Template != "" {
		checkText(c, "", opts.Template, values, result)
		return result, nil
	}
	if opts.Path == "" {
		return nil, NewValidationError("template text or path is required", nil)
	}

	// Get absolute path
	absPath, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, NewValidationError("failed to get absolute path", err)
	}

	// Check if path exists
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("path not found: %s", absPath), err)
	}

	// Process based on file or directory
	if info.IsDir() {
		err = checkDirectory(ctx, c, absPath, opts.Recursive, values, result)
	} else {
		err = checkFile(c, absPath, values, result)
	}

	if err != nil {
		return nil, err
	}

	return result, nil
}

// checkDirectory checks all template files in a directory.
func checkDirectory(ctx context.Context, c *compiler.Compiler, dirPath string, recursive bool, values placeholder.Values, result *CheckResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return NewValidationError(fmt.Sprintf("failed to read directory: %s", dirPath), err)
	}

	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// Skip hidden files and directories
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		if entry.IsDir() {
			if recursive {
				if err := checkDirectory(ctx, c, fullPath, recursive, values, result); err != nil {
					return err
				}
			}
			continue
		}

		if entry.Type().IsRegular() && isTemplateFile(fullPath) {
			if err := checkFile(c, fullPath, values, result); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkFile checks a single template file.
func checkFile(c *compiler.Compiler, filePath string, values placeholder.Values, result *CheckResult) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return NewTemplateReadError(fmt.Sprintf("failed to read template %s", filePath), err)
	}
	checkText(c, filePath, string(content), values, result)
	return nil
}

func checkText(c *compiler.Compiler, file, text string, values placeholder.Values, result *CheckResult) {
	report := c.Check(text, values)
	result.FilesChecked++
	if !report.Valid {
		result.FilesWithErrors++
	}
	result.Reports = append(result.Reports, FileReport{File: file, CheckReport: report})
}

func isTemplateFile(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), TemplateExtension)
}

// LooksLikeTemplate reports whether text starts like a template.
func LooksLikeTemplate(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, parser.Marker) || strings.HasPrefix(text, parser.Separator)
}
