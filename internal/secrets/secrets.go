// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from the environment or from a
// directory of plain-text files. Each file in the directory is one secret:
// the filename is the key name and the trimmed contents are the value.
//
// Supported keys: groq-api-key (environment GROQ_API_KEY).
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets"

// GroqAPIKey names the Groq chat API key.
const GroqAPIKey = "groq-api-key"

// EnvName maps a key file name to its environment variable:
// "groq-api-key" becomes "GROQ_API_KEY".
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error. Unreadable files produce
// a warning on warn (nil discards) and are skipped.
func Load(dir string, warn io.Writer) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if warn != nil {
				fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			}
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// Lookup returns the value for key, preferring the environment variable
// over the file in dir.
func Lookup(dir, key string, warn io.Writer) (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvName(key))); v != "" {
		return v, nil
	}
	all, err := Load(dir, warn)
	if err != nil {
		return "", err
	}
	return all[key], nil
}
