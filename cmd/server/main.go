package main

import (
	"log"
	"strings"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/admin"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/backend"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/config"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/reporte"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/turno"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/ventas"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/webui"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	api := backend.New(cfg.BackendAPIURL)
	carritos := ventas.NewStore()
	estadoInforme := &reporte.Estado{}

	app := fiber.New(fiber.Config{
		AppName: "caffeflux-frontend",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(corsOrigins, ","),
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		ExposeHeaders: "Content-Disposition, X-Cierre-Estado, X-Cierre-Mensaje",
	}))

	// Pantalla del mostrador
	app.Get("/", webui.PaginaHandler())

	ui := app.Group("/ui")

	// Catálogo
	ui.Get("/productos", ventas.ListProductosHandler(api))

	// Carrito y ventas
	ui.Get("/carrito", ventas.VerCarritoHandler(carritos))
	ui.Post("/carrito/agregar", ventas.AgregarHandler(api, carritos))
	ui.Post("/carrito/quitar", ventas.QuitarHandler(carritos))
	ui.Post("/ventas/confirmar", ventas.ConfirmarVentaHandler(api, carritos))

	// Turnos
	ui.Post("/turnos/abrir", turno.AbrirTurnoHandler(api))
	ui.Get("/turnos", turno.ListTurnosHandler(api))
	ui.Post("/turnos/cerrar", turno.CerrarTurnoHandler(api))
	ui.Delete("/turnos/:id", turno.EliminarTurnoHandler(api))

	// Administración
	ui.Get("/pagos/resumen", admin.ResumenPagosHandler(api))
	ui.Post("/cerrar-dia", reporte.CerrarDiaHandler(api, estadoInforme))

	log.Println("Mostrador CaffeFlux escuchando en el puerto", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
