package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/oscli/internal/errors"
)

func compliantSnapshot() []Command {
	ns := param("--namespace-name", "--namespace", "-ns")
	bn := param("--bucket-name", "-bn")
	key := param("--encryption-key-file")
	src := param("--source-encryption-key-file")

	var commands []Command
	for _, k := range EncryptionKeyFileCommands {
		c := Command{Parent: "object", Name: k[len("object "):], Params: []Param{ns, bn, key}}
		if c.Name == "copy" || c.Name == "reencrypt" {
			c.Params = append(c.Params, src)
		}
		commands = append(commands, c)
	}
	commands = append(commands,
		cmd("retention-rule", "create", ns, bn, param("--time-amount"), param("--time-unit")),
		cmd("retention-rule", "update", ns, bn, param("--time-amount"), param("--time-unit")),
		cmd("bucket", "list", ns, param("--compartment-id", "-c")),
	)
	return commands
}

func TestValidator_Validate(t *testing.T) {
	t.Run("compliant registry", func(t *testing.T) {
		report := NewValidator().Validate(compliantSnapshot())

		assert.True(t, report.OK())
		assert.Equal(t, 11, report.Commands)
		assert.NoError(t, report.Err())
	})

	t.Run("reports every finding", func(t *testing.T) {
		commands := compliantSnapshot()
		commands = append(commands,
			cmd("bucket", "get", param("--bucket-name")),
			cmd("bucket", "delete", param("--opc-sse-customer-key")),
		)
		commands[8].Params = append(commands[8].Params, param("--duration"))

		report := NewValidator().Validate(commands)

		require.False(t, report.OK())
		assert.Len(t, report.Violations, 3)
		assert.Len(t, report.ByCategory(AliasInconsistency), 1)
		assert.Len(t, report.ByCategory(ForbiddenAliasPresent), 2)

		err := report.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "bucket delete")
		assert.Contains(t, err.Error(), "retention-rule create")
	})

	t.Run("drift when allowlisted command disappears", func(t *testing.T) {
		commands := compliantSnapshot()[1:]

		report := NewValidator().Validate(commands)

		drift := report.ByCategory(RegistryDrift)
		require.Len(t, drift, 1)
		assert.Equal(t, "object bulk-download", drift[0].Command)
	})
}

func TestValidator_CustomRules(t *testing.T) {
	called := 0
	v := NewValidator(func([]Command) []Violation {
		called++
		return []Violation{{Command: "x y", Category: RegistryDrift}}
	})

	report := v.Validate(nil)
	assert.Equal(t, 1, called)
	assert.Len(t, report.Violations, 1)
}

func TestValidator_ValidateTree(t *testing.T) {
	report, err := NewValidator().ValidateTree(testTree(), "os")
	require.NoError(t, err)
	assert.Equal(t, 3, report.Commands)
	assert.NotEmpty(t, report.ByCategory(RegistryDrift))

	_, err = NewValidator().ValidateTree(testTree(), "missing")
	assert.ErrorIs(t, err, ErrNamespaceNotFound)
}
