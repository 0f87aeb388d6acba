package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadPackageMeta reads name, version, and description from a package.json.
// Name and version are required; description may be empty.
func ReadPackageMeta(path string) (PackageMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PackageMeta{}, fmt.Errorf("failed to read package metadata: %w", err)
	}

	var meta PackageMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return PackageMeta{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if meta.Name == "" {
		return PackageMeta{}, fmt.Errorf("%s: name is required", path)
	}
	if meta.Version == "" {
		return PackageMeta{}, fmt.Errorf("%s: version is required", path)
	}

	return meta, nil
}
