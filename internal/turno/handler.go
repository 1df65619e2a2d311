package turno

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/backend"
	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AbrirTurnoForm struct {
	Nombre string `json:"nombre"`
	Fondo  string `json:"fondo"` // texto libre del input; vacío o inválido vale 0
}

type CerrarTurnoForm struct {
	IDTurno       int    `json:"id_turno"`
	UsuarioCierre string `json:"usuario_cierre"`
	Confirmar     bool   `json:"confirmar"`
}

// errorRemoto convierte un fallo del backend en el mensaje visible para el
// usuario, conservando el "detail" estructurado cuando existe.
func errorRemoto(err error, prefijo string) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return fiber.NewError(apiErr.Status, prefijo+": "+apiErr.Detail)
	}
	return fiber.NewError(fiber.StatusBadGateway, prefijo+": Error de conexión con el servidor")
}

// POST /ui/turnos/abrir
// Sin nombre no se abre nada ni se toca el backend.
func AbrirTurnoHandler(api *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AbrirTurnoForm
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		if body.Nombre == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ingresa tu nombre antes de abrir el turno.")
		}

		fondo, err := strconv.ParseFloat(strings.TrimSpace(body.Fondo), 64)
		if err != nil {
			fondo = 0
		}

		req := models.AbrirTurnoRequest{
			UsuarioResponsable: body.Nombre,
			FondoInicial:       fondo,
			HoraApertura:       time.Now().UTC().Format(time.RFC3339),
		}

		abierto, err := api.OpenTurno(c.Context(), req)
		if err != nil {
			return errorRemoto(err, "Error al abrir el turno")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"mensaje": fmt.Sprintf("Turno abierto correctamente (%s)", abierto.UsuarioResponsable),
			"turno":   abierto,
		})
	}
}

// GET /ui/turnos?estado=abiertos
// Sin filtro devuelve todos los turnos; estado=abiertos filtra del lado del
// cliente los que aún no tienen hora de cierre.
func ListTurnosHandler(api *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		turnos, err := api.ListTurnos(c.Context())
		if err != nil {
			return errorRemoto(err, "Error al cargar la lista de turnos")
		}

		if c.Query("estado") == "abiertos" {
			abiertos := make([]models.Turno, 0, len(turnos))
			for _, t := range turnos {
				if t.Activo() {
					abiertos = append(abiertos, t)
				}
			}
			turnos = abiertos
		}

		return c.JSON(turnos)
	}
}

// POST /ui/turnos/cerrar
// El modal de la vista manda confirmar=true; sin esa confirmación explícita
// no se emite ninguna petición al backend.
func CerrarTurnoHandler(api *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CerrarTurnoForm
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}
		if !body.Confirmar {
			return fiber.NewError(fiber.StatusBadRequest, "El cierre de turno requiere confirmación.")
		}
		if body.IDTurno <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de turno inválido")
		}

		err := api.CloseTurno(c.Context(), models.CerrarTurnoRequest{
			IDTurno:       body.IDTurno,
			UsuarioCierre: body.UsuarioCierre,
		})
		if err != nil {
			return errorRemoto(err, "Error al cerrar el turno")
		}

		return c.JSON(fiber.Map{
			"mensaje": fmt.Sprintf("Turno de %s cerrado correctamente.", body.UsuarioCierre),
		})
	}
}

// DELETE /ui/turnos/:id?confirmar=true
// Eliminación irreversible, también detrás del modal de confirmación.
func EliminarTurnoHandler(api *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query("confirmar") != "true" {
			return fiber.NewError(fiber.StatusBadRequest, "La eliminación de un turno requiere confirmación.")
		}
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de turno inválido")
		}

		if err := api.DeleteTurno(c.Context(), id); err != nil {
			return errorRemoto(err, "Error al eliminar turno")
		}

		return c.JSON(fiber.Map{
			"mensaje": fmt.Sprintf("Turno #%d eliminado correctamente.", id),
		})
	}
}
