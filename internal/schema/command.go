// Package schema checks the structural consistency of the command registry.
//
// The live urfave/cli tree is flattened once into a snapshot of plain
// records (command, its flags, each flag's options) and every rule runs over
// that snapshot. Rules return findings instead of failing, so a single scan
// reports every problem in the registry.
package schema

import (
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/internal/errors"
)

// shortOptMaxLen is the longest flag name rendered with a single dash
// (-n, -ns, -bn).
const shortOptMaxLen = 2

// ErrNamespaceNotFound is returned when the namespace command is not
// registered under the root.
var ErrNamespaceNotFound = errors.Wrap(errors.ErrNotFound, "command namespace not found")

// Param is one flag declaration of a command.
type Param struct {
	// Name is the primary flag name without dashes.
	Name string
	// Opts lists every option that triggers the flag, dashes included.
	Opts []string
}

// HasOpt reports whether opt triggers the flag.
func (p Param) HasOpt(opt string) bool {
	return slices.Contains(p.Opts, opt)
}

// Command is one leaf command of the registry.
type Command struct {
	Parent string
	Name   string
	Params []Param
}

// Key identifies the command as "<parent> <name>", e.g. "object put".
func (c Command) Key() string {
	return c.Parent + " " + c.Name
}

// HasOpt reports whether any of the command's flags is triggered by opt.
func (c Command) HasOpt(opt string) bool {
	for _, p := range c.Params {
		if p.HasOpt(opt) {
			return true
		}
	}
	return false
}

// CollectCommands locates the namespace command under root and flattens every
// leaf command beneath it, depth first, in registration order.
func CollectCommands(root *cli.Command, namespace string) ([]Command, error) {
	if root == nil {
		return nil, ErrNamespaceNotFound
	}

	var ns *cli.Command
	for _, c := range root.Commands {
		if c.Name == namespace || slices.Contains(c.Aliases, namespace) {
			ns = c
			break
		}
	}
	if ns == nil {
		return nil, errors.Wrapf(ErrNamespaceNotFound, "namespace %q", namespace)
	}

	var commands []Command
	collect(ns, &commands)
	return commands, nil
}

func collect(parent *cli.Command, out *[]Command) {
	for _, c := range parent.Commands {
		if len(c.Commands) > 0 {
			collect(c, out)
			continue
		}
		*out = append(*out, Command{
			Parent: parent.Name,
			Name:   c.Name,
			Params: paramsOf(c.Flags),
		})
	}
}

func paramsOf(flags []cli.Flag) []Param {
	params := make([]Param, 0, len(flags))
	for _, f := range flags {
		names := f.Names()
		if len(names) == 0 {
			continue
		}
		opts := make([]string, 0, len(names))
		for _, n := range names {
			opts = append(opts, Opt(n))
		}
		params = append(params, Param{Name: names[0], Opts: opts})
	}
	return params
}

// Opt renders a flag name as the option a user types.
func Opt(name string) string {
	if len(name) <= shortOptMaxLen {
		return "-" + name
	}
	return "--" + name
}

// bareName strips leading dashes so "--opc-sse-customer-key" and
// "opc-sse-customer-key" compare equal.
func bareName(opt string) string {
	return strings.TrimLeft(opt, "-")
}
