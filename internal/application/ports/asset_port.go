package ports

// AssetKind variante de imagen de un producto.
type AssetKind string

const (
	AssetProduct AssetKind = "product" // tarjeta del catálogo
	AssetCart    AssetKind = "cart"    // miniatura del carrito
)

// Asset imagen resuelta para un producto.
type Asset struct {
	URL         string // ruta pública
	Path        string // ruta en disco; vacía para el placeholder remoto
	Placeholder bool
}

// AssetResolver resuelve la imagen de un producto a partir de su SKU.
// Devuelve domain.ErrAssetNotFound cuando no existe.
type AssetResolver interface {
	Resolve(sku int64, kind AssetKind) (Asset, error)
}
