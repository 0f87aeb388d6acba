package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON writes doc as indented JSON to dir/filename, creating dir if
// needed. The document is written to a temp file in the same directory and
// renamed over the destination, so readers never observe a partial file.
func WriteJSON(dir, filename string, doc any) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", filename, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "."+filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	// CreateTemp uses 0600.
	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to chmod temp file: %w", err)
	}

	finalPath := filepath.Join(dir, filename)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to rename temp file: %w", err)
	}

	return finalPath, nil
}

// WriteComponentManifest writes m to dir/manifest.json.
func WriteComponentManifest(dir string, m *ComponentManifest) (string, error) {
	return WriteJSON(dir, ComponentManifestFile, m)
}

// WriteTokensManifest writes m to dir/tokens.json.
func WriteTokensManifest(dir string, m *TokensManifest) (string, error) {
	return WriteJSON(dir, TokensManifestFile, m)
}
