package scanner

import (
	"strings"
)

// ExtractExports returns the names exported by brace-delimited export
// statements in an index file, in source order. Type-only qualifiers are
// stripped and "A as B" yields B. Duplicates are kept.
//
// Star re-exports ("export * from") and declaration exports ("export const")
// are not reported; re-exports are never followed into other files.
func ExtractExports(src string) []string {
	exports := []string{}

	for _, m := range ExportGroupPattern.FindAllStringSubmatch(src, -1) {
		for _, item := range strings.Split(m[1], ",") {
			name := strings.TrimSpace(item)
			name = TypeQualifierPattern.ReplaceAllString(name, "")
			if alias := AliasPattern.FindStringSubmatch(name); alias != nil {
				name = alias[1]
			}
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			exports = append(exports, name)
		}
	}

	return exports
}
