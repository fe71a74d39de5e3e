package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/rowkit/internal/render"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "render.width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateRender()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateRender validates the RenderConfig
func (c *Config) validateRender() []ValidationError {
	var errors []ValidationError

	if c.Render.Width < 0 {
		errors = append(errors, ValidationError{
			Field:   "render.width",
			Value:   c.Render.Width,
			Message: "must be non-negative",
		})
	}

	// 0 means use the terminal width; anything narrower than this cannot hold a row.
	const minWidth = 10
	const maxWidth = 1000
	if c.Render.Width > 0 && c.Render.Width < minWidth {
		errors = append(errors, ValidationError{
			Field:   "render.width",
			Value:   c.Render.Width,
			Message: fmt.Sprintf("must be at least %d columns", minWidth),
		})
	}
	if c.Render.Width > maxWidth {
		errors = append(errors, ValidationError{
			Field:   "render.width",
			Value:   c.Render.Width,
			Message: fmt.Sprintf("exceeds maximum of %d columns", maxWidth),
		})
	}

	if c.Render.Theme != "" && !render.IsValidTheme(c.Render.Theme) {
		errors = append(errors, ValidationError{
			Field:   "render.theme",
			Value:   c.Render.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(render.BuiltinThemes(), ", ")),
		})
	}

	if c.Render.HeaderPrecedence != "" && !slices.Contains(render.ValidHeaderPrecedences(), c.Render.HeaderPrecedence) {
		errors = append(errors, ValidationError{
			Field:   "render.header_precedence",
			Value:   c.Render.HeaderPrecedence,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(render.ValidHeaderPrecedences(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

// RenderOptions converts the render configuration into renderer options.
// A zero width is replaced by fallbackWidth.
func (c *Config) RenderOptions(fallbackWidth int) render.Options {
	opts := render.DefaultOptions()
	opts.Width = c.Render.Width
	if opts.Width == 0 {
		opts.Width = fallbackWidth
	}
	if c.Render.Theme != "" {
		opts.Theme = render.ThemeName(c.Render.Theme)
	}
	if c.Render.HeaderPrecedence != "" {
		opts.HeaderPrecedence = render.HeaderPrecedence(c.Render.HeaderPrecedence)
	}
	opts.ShowEmptySections = c.Render.ShowEmptySections
	opts.ShowIndex = c.Render.ShowIndex
	return opts
}
