// Package assets embeds the default arena catalog.
package assets

import _ "embed"

// CatalogYAML is the built-in catalog document parsed by catalog.Default.
//
//go:embed catalog.yaml
var CatalogYAML []byte
