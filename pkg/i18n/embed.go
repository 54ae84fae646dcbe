package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// LoadDefault loads the built-in French and English catalogue.
func LoadDefault(ctx context.Context) (Catalog, error) {
	return LoadFS(ctx, locales, "locales/*")
}
