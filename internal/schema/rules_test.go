package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmd(parent, name string, params ...Param) Command {
	return Command{Parent: parent, Name: name, Params: params}
}

func param(opts ...string) Param {
	return Param{Name: bareName(opts[0]), Opts: opts}
}

func TestCheckAliasConsistency(t *testing.T) {
	commands := []Command{
		cmd("object", "put", param("--namespace-name", "--namespace", "-ns"), param("--bucket-name", "-bn")),
		cmd("object", "get", param("--namespace-name", "-ns"), param("--bucket-name")),
		cmd("bucket", "list", param("--compartment-id", "-c")),
	}

	violations := CheckAliasConsistency(commands, NamespaceAliases, BucketAliases)
	require.Len(t, violations, 2)

	assert.Equal(t, "object get", violations[0].Command)
	assert.Equal(t, AliasInconsistency, violations[0].Category)
	assert.Contains(t, violations[0].Detail, "--namespace")

	assert.Equal(t, "object get", violations[1].Command)
	assert.Contains(t, violations[1].Detail, "-bn")
}

func TestCheckAliasConsistency_SplitAcrossFlags(t *testing.T) {
	commands := []Command{
		cmd("object", "head", param("--namespace-name", "--namespace"), param("-ns")),
	}

	violations := CheckAliasConsistency(commands, NamespaceAliases)
	assert.Len(t, violations, 1)
}

func TestCheckForbiddenAliases(t *testing.T) {
	commands := []Command{
		cmd("object", "put", param("--opc-sse-customer-key"), param("--sse-customer-key")),
		cmd("object", "get", param("--encryption-key-file")),
	}

	violations := CheckForbiddenAliases(commands, AutoGeneratedAliases)
	require.Len(t, violations, 2)
	for _, v := range violations {
		assert.Equal(t, "object put", v.Command)
		assert.Equal(t, ForbiddenAliasPresent, v.Category)
	}

	assert.Empty(t, CheckForbiddenAliases(commands[1:], AutoGeneratedAliases))
}

func TestCheckRequiredAliasSets(t *testing.T) {
	allowlist := []string{"retention-rule create", "retention-rule update", "retention-rule lock"}
	commands := []Command{
		cmd("retention-rule", "create", param("--time-amount"), param("--time-unit")),
		cmd("retention-rule", "update", param("--time-amount")),
		cmd("retention-rule", "list", param("--bucket-name", "-bn")),
	}

	violations := CheckRequiredAliasSets(commands, allowlist, AliasGroup{"--time-amount"}, AliasGroup{"--time-unit"})
	require.Len(t, violations, 2)

	assert.Equal(t, Violation{
		Command:  "retention-rule update",
		Category: RequiredAliasMissing,
		Detail:   "missing required option {--time-unit}",
	}, violations[0])
	assert.Equal(t, "retention-rule lock", violations[1].Command)
	assert.Equal(t, RegistryDrift, violations[1].Category)
}

func TestCheckExclusiveAlias(t *testing.T) {
	commands := []Command{
		cmd("object", "copy", param("--source-encryption-key-file")),
		cmd("object", "reencrypt"),
		cmd("object", "put", param("--source-encryption-key-file")),
	}

	violations := CheckExclusiveAlias(commands, "--source-encryption-key-file", SourceEncryptionKeyFileCommands)
	require.Len(t, violations, 2)
	assert.Equal(t, "object reencrypt", violations[0].Command)
	assert.Equal(t, RequiredAliasMissing, violations[0].Category)
	assert.Equal(t, "object put", violations[1].Command)
	assert.Equal(t, ForbiddenAliasPresent, violations[1].Category)
}

func TestFilterAndExposingOpt(t *testing.T) {
	commands := []Command{
		cmd("object", "put", param("--encryption-key-file")),
		cmd("object", "get", param("--encryption-key-file")),
		cmd("object", "list"),
	}

	filtered := Filter(commands, []string{"object list", "object put"})
	require.Len(t, filtered, 2)
	assert.Equal(t, "object put", filtered[0].Key())

	assert.Equal(t, []string{"object get", "object put"}, ExposingOpt(commands, "--encryption-key-file"))
	assert.Empty(t, ExposingOpt(commands, "--missing"))
}
