package assets

import (
	"net/url"
	"path"
	"strings"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true,
}

// ValidateImageURL acepta URLs http/https (o rutas relativas al sitio) cuya ruta termina
// en una extensión de imagen. Cualquier otra cosa se reemplaza por PlaceholderURL.
func ValidateImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PlaceholderURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return PlaceholderURL
	}
	// Las rutas relativas se resuelven contra el propio sitio, que es http(s).
	if u.IsAbs() && u.Scheme != "http" && u.Scheme != "https" {
		return PlaceholderURL
	}
	if !imageExtensions[strings.ToLower(path.Ext(u.Path))] {
		return PlaceholderURL
	}
	return raw
}
