// Package catalogs provides the embedded default component catalog.
package catalogs

import _ "embed"

// DefaultYAML is the bundled component catalog, embedded at build time.
//
//go:embed default/catalog.yaml
var DefaultYAML []byte
