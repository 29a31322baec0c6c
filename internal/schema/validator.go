package schema

import (
	"github.com/urfave/cli/v3"
)

// Namespace is the command group every rule applies to.
const Namespace = "os"

var (
	// NamespaceAliases must be declared together on any namespace flag.
	NamespaceAliases = AliasGroup{"-ns", "--namespace", "--namespace-name"}

	// BucketAliases must be declared together on any bucket flag.
	BucketAliases = AliasGroup{"-bn", "--bucket-name"}

	// AutoGeneratedAliases are derived from key files and never user-settable.
	AutoGeneratedAliases = []string{
		"opc-sse-customer-algorithm",
		"opc-sse-customer-key",
		"opc-sse-customer-key-sha256",
		"opc-source-sse-customer-algorithm",
		"opc-source-sse-customer-key",
		"opc-source-sse-customer-key-sha256",
		"sse-customer-key",
		"source-sse-customer-key",
	}

	// EncryptionKeyFileCommands expose exactly --encryption-key-file.
	EncryptionKeyFileCommands = []string{
		"object bulk-download",
		"object bulk-upload",
		"object copy",
		"object get",
		"object head",
		"object put",
		"object reencrypt",
		"object sync",
	}

	// SourceEncryptionKeyFileCommands expose exactly --source-encryption-key-file.
	SourceEncryptionKeyFileCommands = []string{
		"object copy",
		"object reencrypt",
	}

	// RetentionDurationCommands take --time-amount and --time-unit, never --duration.
	RetentionDurationCommands = []string{
		"retention-rule create",
		"retention-rule update",
	}
)

// Rule inspects a snapshot and returns its findings.
type Rule func(commands []Command) []Violation

// Validator runs a fixed set of rules over a registry snapshot.
type Validator struct {
	Rules []Rule
}

// NewValidator returns a Validator with the given rules, or DefaultRules when
// none are given.
func NewValidator(rules ...Rule) *Validator {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Validator{Rules: rules}
}

// DefaultRules encodes the registry invariants of the os namespace.
func DefaultRules() []Rule {
	return []Rule{
		func(cmds []Command) []Violation {
			return CheckAliasConsistency(cmds, NamespaceAliases, BucketAliases)
		},
		func(cmds []Command) []Violation {
			return CheckForbiddenAliases(cmds, AutoGeneratedAliases)
		},
		func(cmds []Command) []Violation {
			return CheckExclusiveAlias(cmds, "--encryption-key-file", EncryptionKeyFileCommands)
		},
		func(cmds []Command) []Violation {
			return CheckExclusiveAlias(cmds, "--source-encryption-key-file", SourceEncryptionKeyFileCommands)
		},
		func(cmds []Command) []Violation {
			return CheckRequiredAliasSets(
				cmds,
				RetentionDurationCommands,
				AliasGroup{"--time-amount"},
				AliasGroup{"--time-unit"},
			)
		},
		func(cmds []Command) []Violation {
			return CheckForbiddenAliases(Filter(cmds, RetentionDurationCommands), []string{"--duration"})
		},
	}
}

// Validate runs every rule over commands. All rules always run.
func (v *Validator) Validate(commands []Command) *Report {
	report := &Report{Commands: len(commands), Violations: []Violation{}}
	for _, rule := range v.Rules {
		report.Violations = append(report.Violations, rule(commands)...)
	}
	return report
}

// ValidateTree snapshots the namespace under root and validates it.
func (v *Validator) ValidateTree(root *cli.Command, namespace string) (*Report, error) {
	commands, err := CollectCommands(root, namespace)
	if err != nil {
		return nil, err
	}
	return v.Validate(commands), nil
}
