package commands

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/oscli/internal/errors"
	sseDomain "github.com/allisson/oscli/internal/sse/domain"
	sseService "github.com/allisson/oscli/internal/sse/service"
)

// encryptionKeySize is the AES-256 key length the service expects.
const encryptionKeySize = 32

// RunCreateEncryptionKey writes a random AES-256 key, base64 encoded, to path
// with 0600 permissions and prints the key's SHA-256 checksum. An existing
// file is only replaced when force is set.
func RunCreateEncryptionKey(logger *slog.Logger, path string, force bool, writer io.Writer) error {
	if path == "" {
		return errors.Wrap(errors.ErrUsage, "Missing option(s) --file")
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	key := make([]byte, encryptionKeySize)
	defer sseDomain.Zero(key)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}
	encoded := []byte(base64.StdEncoding.EncodeToString(key))
	defer sseDomain.Zero(encoded)

	material, err := sseService.DeriveKeyMaterial(bytes.NewReader(encoded))
	if err != nil {
		return err
	}

	//nolint:gosec // path is an operator-supplied key file
	f, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(errors.ErrConflict, "key file %s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("failed to create key file: %w", err)
	}
	if _, err := f.Write(encoded); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write key file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close key file: %w", err)
	}

	logger.Info("encryption key created", slog.String("file", path))

	_, _ = fmt.Fprintf(writer, "Key file: %s\n", path)
	_, _ = fmt.Fprintf(writer, "SHA-256: %s\n", material.KeySha256Base64)
	return nil
}
