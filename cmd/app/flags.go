package main

import (
	"github.com/urfave/cli/v3"
)

// namespaceFlag exposes -ns, --namespace and --namespace-name together. When
// omitted the namespace of the caller's tenancy is looked up.
func namespaceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "namespace-name",
		Aliases: []string{"namespace", "ns"},
		Usage:   "Object Storage namespace (defaults to the tenancy namespace)",
	}
}

func bucketFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "bucket-name",
		Aliases:  []string{"bn"},
		Required: true,
		Usage:    "Bucket name",
	}
}

func encryptionKeyFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "encryption-key-file",
		Usage: "File holding a base64 AES-256 key used for server-side encryption",
	}
}

func sourceEncryptionKeyFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "source-encryption-key-file",
		Usage: "File holding the base64 AES-256 key the source object is encrypted with",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: "text",
		Usage: "Output format: 'text' or 'json'",
	}
}

func compartmentIDFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "compartment-id",
		Aliases:  []string{"c"},
		Required: required,
		Usage:    "Compartment OCID",
	}
}
