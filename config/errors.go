package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// ValidationError reports one malformed field. Path is the dotted field path
// from the root of the site config, e.g. themeConfig.socialLinks[0].icon.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// ValidationErrors collects every violation found in one validation pass.
type ValidationErrors struct {
	errors []*ValidationError
}

func (v *ValidationErrors) Add(path string, value any, reason string) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Str("reason", reason).
		Msg("invalid config value")
	v.errors = append(v.errors, &ValidationError{Path: path, Reason: reason})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *ValidationErrors) Errors() []*ValidationError {
	out := make([]*ValidationError, len(v.errors))
	copy(out, v.errors)
	return out
}

// Has reports whether any violation was recorded for path.
func (v *ValidationErrors) Has(path string) bool {
	for _, err := range v.errors {
		if err.Path == path {
			return true
		}
	}
	return false
}

func (v *ValidationErrors) Unwrap() []error {
	out := make([]error, len(v.errors))
	for i, err := range v.errors {
		out[i] = err
	}
	return out
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("site configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func fieldPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

func keyPath(parent, key string) string {
	return fmt.Sprintf("%s[%q]", parent, key)
}
