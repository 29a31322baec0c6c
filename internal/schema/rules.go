package schema

import (
	"fmt"
	"slices"
	"strings"
)

// AliasGroup is a set of options that must always be declared together on
// the same flag.
type AliasGroup []string

func (g AliasGroup) String() string {
	return "{" + strings.Join(g, ", ") + "}"
}

// CheckAliasConsistency reports every command with a flag that exposes some,
// but not all, options of a group. One violation is recorded per command and
// group.
func CheckAliasConsistency(commands []Command, groups ...AliasGroup) []Violation {
	var violations []Violation
	for _, cmd := range commands {
		for _, group := range groups {
			for _, p := range cmd.Params {
				missing := missingOpts(p, group)
				if len(missing) == 0 || len(missing) == len(group) {
					continue
				}
				violations = append(violations, Violation{
					Command:  cmd.Key(),
					Category: AliasInconsistency,
					Detail: fmt.Sprintf(
						"flag %q exposes part of %s, missing %s",
						p.Name, group, strings.Join(missing, ", "),
					),
				})
				break
			}
		}
	}
	return violations
}

func missingOpts(p Param, group AliasGroup) []string {
	var missing []string
	for _, opt := range group {
		if !p.HasOpt(opt) {
			missing = append(missing, opt)
		}
	}
	return missing
}

// CheckForbiddenAliases reports every command exposing one of the forbidden
// options. Leading dashes are ignored on both sides.
func CheckForbiddenAliases(commands []Command, forbidden []string) []Violation {
	var violations []Violation
	for _, cmd := range commands {
		for _, f := range forbidden {
			if opt, ok := findBare(cmd, bareName(f)); ok {
				violations = append(violations, Violation{
					Command:  cmd.Key(),
					Category: ForbiddenAliasPresent,
					Detail:   fmt.Sprintf("exposes forbidden option %s", opt),
				})
			}
		}
	}
	return violations
}

func findBare(cmd Command, name string) (string, bool) {
	for _, p := range cmd.Params {
		for _, opt := range p.Opts {
			if bareName(opt) == name {
				return opt, true
			}
		}
	}
	return "", false
}

// CheckRequiredAliasSets restricts the scan to the allowlisted commands and
// reports, for each, every required set with no option present. Allowlisted
// commands absent from the snapshot are reported as RegistryDrift.
func CheckRequiredAliasSets(commands []Command, allowlist []string, required ...AliasGroup) []Violation {
	var violations []Violation
	seen := make(map[string]bool, len(allowlist))

	for _, cmd := range commands {
		key := cmd.Key()
		if !slices.Contains(allowlist, key) {
			continue
		}
		seen[key] = true
		for _, set := range required {
			if !slices.ContainsFunc(set, cmd.HasOpt) {
				violations = append(violations, Violation{
					Command:  key,
					Category: RequiredAliasMissing,
					Detail:   fmt.Sprintf("missing required option %s", set),
				})
			}
		}
	}

	for _, key := range allowlist {
		if !seen[key] {
			violations = append(violations, Violation{
				Command:  key,
				Category: RegistryDrift,
				Detail:   "listed command is not registered",
			})
		}
	}
	return violations
}

// CheckExclusiveAlias asserts that exactly the allowlisted commands expose opt.
func CheckExclusiveAlias(commands []Command, opt string, allowlist []string) []Violation {
	violations := CheckRequiredAliasSets(commands, allowlist, AliasGroup{opt})
	for _, cmd := range commands {
		if cmd.HasOpt(opt) && !slices.Contains(allowlist, cmd.Key()) {
			violations = append(violations, Violation{
				Command:  cmd.Key(),
				Category: ForbiddenAliasPresent,
				Detail:   fmt.Sprintf("exposes %s but is not listed for it", opt),
			})
		}
	}
	return violations
}

// Filter returns the commands whose key is in allowlist.
func Filter(commands []Command, allowlist []string) []Command {
	var out []Command
	for _, cmd := range commands {
		if slices.Contains(allowlist, cmd.Key()) {
			out = append(out, cmd)
		}
	}
	return out
}

// ExposingOpt returns the sorted keys of commands exposing opt.
func ExposingOpt(commands []Command, opt string) []string {
	var keys []string
	for _, cmd := range commands {
		if cmd.HasOpt(opt) {
			keys = append(keys, cmd.Key())
		}
	}
	slices.Sort(keys)
	return keys
}
