package scanner

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnana997/uimanifest/pkg/catalog"
)

// DiscoverEntities checks every (category, name) pair of the catalog against
// componentsRoot. Entries whose directory is absent, or is not a directory,
// are logged and returned as missing; they never stop the run.
//
// Output order is catalog order: categories in declaration order, names in
// declaration order within each category.
func DiscoverEntities(cat *catalog.Catalog, componentsRoot string, log *slog.Logger) ([]Entity, []MissingEntity) {
	if log == nil {
		log = slog.Default()
	}

	var found []Entity
	var missing []MissingEntity

	for _, entry := range cat.Categories {
		for _, name := range entry.Components {
			dir := filepath.Join(componentsRoot, name)

			info, err := os.Stat(dir)
			switch {
			case err != nil:
				reason := "not found"
				if !os.IsNotExist(err) {
					reason = err.Error()
				}
				log.Warn("component directory missing, skipping",
					"component", name, "category", entry.Name, "dir", dir, "reason", reason)
				missing = append(missing, MissingEntity{Category: entry.Name, Name: name, Reason: reason})
			case !info.IsDir():
				log.Warn("component path is not a directory, skipping",
					"component", name, "category", entry.Name, "path", dir)
				missing = append(missing, MissingEntity{Category: entry.Name, Name: name, Reason: "not a directory"})
			default:
				found = append(found, Entity{Category: entry.Name, Name: name, Dir: dir})
			}
		}
	}

	return found, missing
}
