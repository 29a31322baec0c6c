package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func noop(context.Context, *cli.Command) error { return nil }

func testTree() *cli.Command {
	return &cli.Command{
		Name: "app",
		Commands: []*cli.Command{
			{Name: "version", Action: noop},
			{
				Name:    "os",
				Aliases: []string{"object-storage"},
				Commands: []*cli.Command{
					{
						Name: "object",
						Commands: []*cli.Command{
							{
								Name:   "put",
								Action: noop,
								Flags: []cli.Flag{
									&cli.StringFlag{Name: "namespace-name", Aliases: []string{"namespace", "ns"}},
									&cli.StringFlag{Name: "bucket-name", Aliases: []string{"bn"}},
									&cli.StringFlag{Name: "encryption-key-file"},
								},
							},
							{
								Name:   "list",
								Action: noop,
								Flags: []cli.Flag{
									&cli.StringFlag{Name: "bucket-name", Aliases: []string{"bn"}},
									&cli.IntFlag{Name: "limit"},
								},
							},
						},
					},
					{Name: "info", Action: noop},
				},
			},
		},
	}
}

func TestCollectCommands(t *testing.T) {
	commands, err := CollectCommands(testTree(), "os")
	require.NoError(t, err)
	require.Len(t, commands, 3)

	assert.Equal(t, "object put", commands[0].Key())
	assert.Equal(t, "object list", commands[1].Key())
	assert.Equal(t, "os info", commands[2].Key())

	put := commands[0]
	require.Len(t, put.Params, 3)
	assert.Equal(t, "namespace-name", put.Params[0].Name)
	assert.Equal(t, []string{"--namespace-name", "--namespace", "-ns"}, put.Params[0].Opts)
	assert.Equal(t, []string{"--bucket-name", "-bn"}, put.Params[1].Opts)
	assert.True(t, put.HasOpt("--encryption-key-file"))
	assert.False(t, put.HasOpt("--limit"))
}

func TestCollectCommands_ByAlias(t *testing.T) {
	commands, err := CollectCommands(testTree(), "object-storage")
	require.NoError(t, err)
	assert.Len(t, commands, 3)
}

func TestCollectCommands_NamespaceNotFound(t *testing.T) {
	_, err := CollectCommands(testTree(), "compute")
	assert.ErrorIs(t, err, ErrNamespaceNotFound)

	_, err = CollectCommands(nil, "os")
	assert.ErrorIs(t, err, ErrNamespaceNotFound)
}

func TestOpt(t *testing.T) {
	assert.Equal(t, "-n", Opt("n"))
	assert.Equal(t, "-ns", Opt("ns"))
	assert.Equal(t, "--bucket-name", Opt("bucket-name"))
	assert.Equal(t, "--all", Opt("all"))
}
