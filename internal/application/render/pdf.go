package render

import (
	"context"

	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// MenuPDFGenerator es el puerto para generar la carta imprimible de un negocio.
// La implementación vive en infraestructura (Maroto).
type MenuPDFGenerator interface {
	GenerateMenuPDF(ctx context.Context, cfg *entity.Configuration) ([]byte, error)
}
