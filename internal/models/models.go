package models

// Contratos JSON del backend de CaffeFlux. El backend es el dueño de todos
// los datos persistentes; este proceso solo mantiene copias efímeras por
// vista, así que aquí no hay ORM ni nada parecido, solo los tipos del cable.

// Producto según GET /productos.
type Producto struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	PrecioVenta float64 `json:"precio_venta"`
	Categoria   string  `json:"categoria,omitempty"`
}

// Turno según GET /api/turnos. Un turno está activo mientras no tenga hora
// de cierre.
type Turno struct {
	IDTurno            int      `json:"id_turno"`
	UsuarioResponsable string   `json:"usuario_responsable"`
	FondoInicial       float64  `json:"fondo_inicial"`
	HoraApertura       HoraUTC  `json:"hora_apertura"`
	HoraCierre         *HoraUTC `json:"hora_cierre"`
}

func (t Turno) Activo() bool {
	return t.HoraCierre == nil
}

// PagoProducto es una línea de detalle dentro de un pago.
type PagoProducto struct {
	IDProducto     int     `json:"id_producto"`
	Nombre         string  `json:"nombre"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

// Pago según GET /api/pagos. Total puede venir nulo en registros antiguos;
// json lo deja en 0, que es lo que se espera al sumar.
type Pago struct {
	ID         string         `json:"_id,omitempty"`
	MetodoPago string         `json:"metodo_pago"`
	Total      float64        `json:"total"`
	Productos  []PagoProducto `json:"productos"`
}

// VentaItem es una línea del cuerpo de POST /ventas.
type VentaItem struct {
	IDProducto int `json:"id_producto"`
	Cantidad   int `json:"cantidad"`
}

// Venta es el cuerpo de POST /ventas.
type Venta struct {
	Total float64     `json:"total"`
	Items []VentaItem `json:"items"`
}

// AbrirTurnoRequest es el cuerpo de POST /api/turnos/open. La hora de
// apertura se envía siempre en RFC3339 UTC explícito.
type AbrirTurnoRequest struct {
	UsuarioResponsable string  `json:"usuario_responsable"`
	FondoInicial       float64 `json:"fondo_inicial"`
	HoraApertura       string  `json:"hora_apertura"`
}

// CerrarTurnoRequest es el cuerpo de POST /api/turnos/close.
type CerrarTurnoRequest struct {
	IDTurno       int    `json:"id_turno"`
	UsuarioCierre string `json:"usuario_cierre"`
}
