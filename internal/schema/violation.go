package schema

import (
	"fmt"
	"strings"

	"github.com/allisson/oscli/internal/errors"
)

// Category classifies a finding.
type Category string

const (
	// AliasInconsistency: a flag exposes only part of an alias group.
	AliasInconsistency Category = "alias_inconsistency"
	// ForbiddenAliasPresent: a command exposes an option it must not.
	ForbiddenAliasPresent Category = "forbidden_alias_present"
	// RequiredAliasMissing: an allowlisted command lacks a required option.
	RequiredAliasMissing Category = "required_alias_missing"
	// RegistryDrift: an allowlisted command is not registered at all.
	RegistryDrift Category = "registry_drift"
)

// Violation is a single structural finding against one command.
type Violation struct {
	Command  string   `json:"command"`
	Category Category `json:"category"`
	Detail   string   `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Command, v.Category, v.Detail)
}

// Report is the outcome of a full registry scan.
type Report struct {
	Commands   int         `json:"commands"`
	Violations []Violation `json:"violations"`
}

// OK reports whether the scan found nothing.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// ByCategory returns the findings of one category.
func (r *Report) ByCategory(c Category) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

// Err returns nil for a clean report, otherwise an ErrInvalidInput wrapping
// every finding.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		lines = append(lines, v.String())
	}
	return errors.Wrapf(
		errors.ErrInvalidInput,
		"command registry has %d violation(s):\n%s",
		len(r.Violations),
		strings.Join(lines, "\n"),
	)
}
