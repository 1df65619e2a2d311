package reporte

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/backend"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// Estado guarda si hay un informe generándose. El cierre de día es una acción
// de mostrador único: dos cierres simultáneos no tienen sentido y el segundo
// se rechaza.
type Estado struct {
	mu        sync.Mutex
	generando bool
}

// Iniciar marca el paso a "generando"; devuelve false si ya había un cierre
// en curso.
func (e *Estado) Iniciar() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generando {
		return false
	}
	e.generando = true
	return true
}

func (e *Estado) Terminar() {
	e.mu.Lock()
	e.generando = false
	e.mu.Unlock()
}

type CerrarDiaForm struct {
	Confirmar bool `json:"confirmar"`
}

func errorRemoto(err error, prefijo string) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return fiber.NewError(apiErr.Status, prefijo+": "+apiErr.Detail)
	}
	return fiber.NewError(fiber.StatusBadGateway, prefijo+": Error de conexión con el servidor")
}

// POST /ui/cerrar-dia
// Confirmado el modal: trae pagos y turnos en paralelo, genera el PDF y
// recién entonces cierra todos los turnos activos. El resultado del cierre
// viaja en X-Cierre-Estado / X-Cierre-Mensaje, aparte del documento: la
// descarga no se pierde aunque la limpieza falle.
func CerrarDiaHandler(api *backend.Client, estado *Estado) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CerrarDiaForm
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}
		if !body.Confirmar {
			return fiber.NewError(fiber.StatusBadRequest, "El cierre del día requiere confirmación.")
		}

		if !estado.Iniciar() {
			return fiber.NewError(fiber.StatusConflict, "Ya hay un informe generándose.")
		}
		defer estado.Terminar()

		var (
			pagos  []models.Pago
			turnos []models.Turno
			g      errgroup.Group
		)
		g.Go(func() error {
			var err error
			pagos, err = api.ListPagos(c.Context())
			return err
		})
		g.Go(func() error {
			var err error
			turnos, err = api.ListTurnos(c.Context())
			return err
		})
		if err := g.Wait(); err != nil {
			log.Println("Error generando informe:", err)
			return errorRemoto(err, "Error al generar el informe")
		}

		datos := DatosInforme{
			Generado:       time.Now(),
			Pagos:          pagos,
			TurnosCerrados: SoloCerrados(turnos),
			TotalGeneral:   TotalPagos(pagos),
		}

		doc, err := GenerarPDF(datos)
		if err != nil {
			log.Println("Error dibujando PDF:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el PDF del informe")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+NombreArchivo(datos.Generado))

		if mensaje, err := api.CerrarTodosTurnos(c.Context()); err != nil {
			log.Println("Error al cerrar turnos (PUT):", err)
			c.Set("X-Cierre-Estado", "error")
			c.Set("X-Cierre-Mensaje", "Informe generado, pero hubo un error al cerrar los turnos.")
		} else {
			if mensaje == "" {
				mensaje = "Turnos cerrados para iniciar un nuevo día."
			}
			c.Set("X-Cierre-Estado", "ok")
			c.Set("X-Cierre-Mensaje", "Informe generado correctamente. "+mensaje)
		}

		return c.Send(doc)
	}
}
