package admin

import (
	"errors"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/backend"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/reporte"

	"github.com/gofiber/fiber/v2"
)

type ResumenPagosResponse struct {
	Total    float64       `json:"total"`
	Cantidad int           `json:"cantidad"`
	Pagos    []models.Pago `json:"pagos"`
}

func errorRemoto(err error, prefijo string) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return fiber.NewError(apiErr.Status, prefijo+": "+apiErr.Detail)
	}
	return fiber.NewError(fiber.StatusBadGateway, prefijo+": Error de conexión con el servidor")
}

// GET /ui/pagos/resumen
// Resumen de ventas/pagos para la pantalla de administración: total del día
// sumado aquí (un pago sin total cuenta como 0) más el detalle completo para
// la tabla plegable.
func ResumenPagosHandler(api *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pagos, err := api.ListPagos(c.Context())
		if err != nil {
			return errorRemoto(err, "Error cargando pagos")
		}

		return c.JSON(ResumenPagosResponse{
			Total:    reporte.TotalPagos(pagos),
			Cantidad: len(pagos),
			Pagos:    pagos,
		})
	}
}
