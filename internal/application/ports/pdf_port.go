package ports

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// QuotePDFGenerator genera la cotización en PDF de un snapshot del carrito.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, reference string, cart entity.CartSnapshot) ([]byte, error)
}
