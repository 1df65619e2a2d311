package ventas

import "github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"

// LineaCarrito es un producto seleccionado y su cantidad.
type LineaCarrito struct {
	Producto models.Producto `json:"producto"`
	Cantidad int             `json:"cantidad"`
}

// Carrito es la venta en curso de una sesión del mostrador. Invariantes: a lo
// sumo una línea por producto, y Total siempre es la suma de precio×cantidad
// de todas las líneas.
type Carrito struct {
	Lineas []LineaCarrito `json:"lineas"`
	Total  float64        `json:"total"`
}

// Agregar suma una unidad del producto: si ya está en el carrito incrementa
// su cantidad, si no, agrega una línea nueva con cantidad 1.
func (car *Carrito) Agregar(p models.Producto) {
	for i := range car.Lineas {
		if car.Lineas[i].Producto.ID == p.ID {
			car.Lineas[i].Cantidad++
			car.Total += p.PrecioVenta
			return
		}
	}
	car.Lineas = append(car.Lineas, LineaCarrito{Producto: p, Cantidad: 1})
	car.Total += p.PrecioVenta
}

// Quitar elimina la línea completa del producto y descuenta precio×cantidad
// del total. Quitar un producto que no está no hace nada.
func (car *Carrito) Quitar(idProducto int) {
	for i, l := range car.Lineas {
		if l.Producto.ID == idProducto {
			car.Total -= l.Producto.PrecioVenta * float64(l.Cantidad)
			car.Lineas = append(car.Lineas[:i], car.Lineas[i+1:]...)
			return
		}
	}
}

func (car *Carrito) Vacio() bool {
	return len(car.Lineas) == 0
}

// AVenta serializa el carrito como cuerpo de POST /ventas.
func (car *Carrito) AVenta() models.Venta {
	items := make([]models.VentaItem, 0, len(car.Lineas))
	for _, l := range car.Lineas {
		items = append(items, models.VentaItem{IDProducto: l.Producto.ID, Cantidad: l.Cantidad})
	}
	return models.Venta{Total: car.Total, Items: items}
}
