package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// SecretSource describes where a secret comes from.
type SecretSource struct {
	// Name appears in error messages.
	Name string
	// Value is an inline secret from config or env.
	Value string
	// File holds the secret on disk and takes precedence over Value.
	File string
}

// LoadSecret resolves a secret, reading File when set. The result is trimmed and must be non-empty.
func LoadSecret(src SecretSource) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	value := src.Value
	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrapf(err, "read %s from %q", name, file)
		}
		value = string(data)
	}

	secret := strings.TrimSpace(value)
	if secret != "" {
		return secret, nil
	}
	if file != "" {
		return "", errors.Newf("%s file %q is empty", name, file)
	}
	return "", errors.Newf("%s is not configured", name)
}
