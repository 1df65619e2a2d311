package ventas

import (
	"errors"
	"log"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/backend"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const cookieSesion = "caffeflux_sesion"

type AgregarForm struct {
	IDProducto int `json:"id_producto"`
}

type QuitarForm struct {
	IDProducto int `json:"id_producto"`
}

func errorRemoto(err error, prefijo string) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return fiber.NewError(apiErr.Status, prefijo+": "+apiErr.Detail)
	}
	return fiber.NewError(fiber.StatusBadGateway, prefijo+": Error de conexión con el servidor")
}

// sesionID identifica el carrito de esta caja; si el navegador aún no tiene
// cookie se crea una nueva sesión al vuelo.
func sesionID(c *fiber.Ctx) string {
	if v := c.Cookies(cookieSesion); v != "" {
		return v
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     cookieSesion,
		Value:    id,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}

// GET /ui/productos
// Proxy del catálogo del backend, también usado por la página de productos.
func ListProductosHandler(api *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productos, err := api.ListProductos(c.Context())
		if err != nil {
			return errorRemoto(err, "Error al cargar productos")
		}
		return c.JSON(productos)
	}
}

// GET /ui/carrito
func VerCarritoHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Ver(sesionID(c)))
	}
}

// POST /ui/carrito/agregar
// El precio sale siempre del catálogo fresco del backend, no del cliente.
func AgregarHandler(api *backend.Client, store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AgregarForm
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		productos, err := api.ListProductos(c.Context())
		if err != nil {
			return errorRemoto(err, "Error al cargar productos")
		}
		for _, p := range productos {
			if p.ID == body.IDProducto {
				return c.JSON(store.Agregar(sesionID(c), p))
			}
		}
		return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
	}
}

// POST /ui/carrito/quitar
func QuitarHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body QuitarForm
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}
		return c.JSON(store.Quitar(sesionID(c), body.IDProducto))
	}
}

// POST /ui/ventas/confirmar
// Con el carrito vacío no se emite ninguna petición. Si el backend falla, el
// carrito queda intacto para reintentar.
func ConfirmarVentaHandler(api *backend.Client, store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sesion := sesionID(c)

		venta, vacio := store.Venta(sesion)
		if vacio {
			return fiber.NewError(fiber.StatusBadRequest, "No hay productos en la venta.")
		}

		if err := api.CreateVenta(c.Context(), venta); err != nil {
			log.Println("Error registrando venta:", err)
			return errorRemoto(err, "Error al registrar la venta")
		}

		store.Reset(sesion)
		return c.JSON(fiber.Map{"mensaje": "Venta registrada correctamente"})
	}
}
