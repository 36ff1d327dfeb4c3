// Package assets resuelve las imágenes de producto servidas desde el directorio estático.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

const (
	// FallbackURL imagen fija cuando un producto no tiene la suya.
	FallbackURL = "/static/img/fallback.png"
	// PlaceholderURL imagen para URLs externas que no pasan la validación.
	PlaceholderURL = "/placeholder.png"

	publicPrefix = "/static"
)

var _ ports.AssetResolver = (*FileResolver)(nil)

// FileResolver busca {staticDir}/products/{sku}-1-{kind}.webp en disco.
type FileResolver struct {
	staticDir string
}

// NewFileResolver construye el resolvedor sobre el directorio estático.
func NewFileResolver(staticDir string) *FileResolver {
	return &FileResolver{staticDir: staticDir}
}

// FileName nombre del archivo de imagen de un SKU.
func FileName(sku int64, kind ports.AssetKind) string {
	return strconv.FormatInt(sku, 10) + "-1-" + string(kind) + ".webp"
}

// Resolve devuelve domain.ErrAssetNotFound si el archivo no existe.
func (r *FileResolver) Resolve(sku int64, kind ports.AssetKind) (ports.Asset, error) {
	if sku <= 0 {
		return ports.Asset{}, fmt.Errorf("sku %d: %w", sku, domain.ErrAssetNotFound)
	}
	switch kind {
	case ports.AssetProduct, ports.AssetCart:
	default:
		return ports.Asset{}, fmt.Errorf("tipo de imagen %q: %w", kind, domain.ErrInvalidInput)
	}

	name := FileName(sku, kind)
	path := filepath.Join(r.staticDir, "products", name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ports.Asset{}, fmt.Errorf("%s: %w", name, domain.ErrAssetNotFound)
		}
		return ports.Asset{}, fmt.Errorf("consultar %s: %w", name, err)
	}
	if info.IsDir() {
		return ports.Asset{}, fmt.Errorf("%s: %w", name, domain.ErrAssetNotFound)
	}
	return ports.Asset{URL: publicPrefix + "/products/" + name, Path: path}, nil
}

// fallbackResolver convierte cualquier fallo en la imagen de respaldo.
type fallbackResolver struct {
	next ports.AssetResolver
	log  zerolog.Logger
}

// WithFallback envuelve un resolvedor para que nunca falle: las imágenes ausentes o
// ilegibles se reemplazan por FallbackURL.
func WithFallback(next ports.AssetResolver, log zerolog.Logger) ports.AssetResolver {
	return &fallbackResolver{next: next, log: log.With().Str("component", "assets").Logger()}
}

func (f *fallbackResolver) Resolve(sku int64, kind ports.AssetKind) (ports.Asset, error) {
	a, err := f.next.Resolve(sku, kind)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, domain.ErrAssetNotFound) {
		f.log.Warn().Err(err).Int64("sku", sku).Str("kind", string(kind)).Msg("imagen no disponible, se usa la de respaldo")
	}
	return ports.Asset{URL: FallbackURL, Placeholder: true}, nil
}

// URLFunc adapta un resolvedor a una función sku -> URL para armar respuestas.
// La URL pasa por ValidateImageURL antes de exponerse.
func URLFunc(r ports.AssetResolver, kind ports.AssetKind) func(int64) string {
	return func(sku int64) string {
		a, err := r.Resolve(sku, kind)
		if err != nil {
			return FallbackURL
		}
		return ValidateImageURL(a.URL)
	}
}
