package reporte

import (
	"testing"
	"time"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hora(t *testing.T, s string) models.HoraUTC {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return models.HoraUTC{Time: parsed}
}

func TestTotalPagosConTotalesAusentes(t *testing.T) {
	pagos := []models.Pago{
		{Total: 1500},
		{}, // sin total: cuenta como 0
		{Total: 2500},
	}
	assert.Equal(t, 4000.0, TotalPagos(pagos))
	assert.Equal(t, 0.0, TotalPagos(nil))
}

func TestSoloCerrados(t *testing.T) {
	cierre := hora(t, "2025-11-17T17:00:00Z")
	turnos := []models.Turno{
		{IDTurno: 1, HoraCierre: nil},
		{IDTurno: 2, HoraCierre: &cierre},
	}
	cerrados := SoloCerrados(turnos)
	require.Len(t, cerrados, 1)
	assert.Equal(t, 2, cerrados[0].IDTurno)
}

func TestLineasResumenSinPagos(t *testing.T) {
	assert.Equal(t, []string{"No se registraron ventas en este período."}, lineasResumen(nil))
}

func TestLineasResumenDesglosaProductos(t *testing.T) {
	pagos := []models.Pago{
		{
			Total: 4500,
			Productos: []models.PagoProducto{
				{Nombre: "Café", Cantidad: 2, PrecioUnitario: 1000},
				{Nombre: "Torta", Cantidad: 1, PrecioUnitario: 2500},
			},
		},
		{Total: 3000}, // pago viejo sin desglose
	}
	assert.Equal(t, []string{
		"- Café x2: $2000.00",
		"- Torta x1: $2500.00",
		"- Venta sin productos registrados: $3000.00",
	}, lineasResumen(pagos))
}

func TestLineasTurnos(t *testing.T) {
	assert.Equal(t, []string{"No hay turnos cerrados registrados."}, lineasTurnos(nil))

	cierre := hora(t, "2025-11-17T17:30:00Z")
	turnos := []models.Turno{
		{UsuarioResponsable: "Ana", HoraApertura: hora(t, "2025-11-17T08:15:00Z"), HoraCierre: &cierre},
		{HoraApertura: hora(t, "2025-11-17T09:00:00Z"), HoraCierre: &cierre},
	}
	lineas := lineasTurnos(turnos)
	require.Len(t, lineas, 2)
	assert.Contains(t, lineas[0], "Empleado: Ana | inicio: ")
	assert.Contains(t, lineas[1], "Empleado: Desconocido")
}

func TestGenerarPDFProduceUnDocumento(t *testing.T) {
	datos := DatosInforme{
		Generado:     time.Date(2025, 11, 17, 21, 0, 0, 0, time.UTC),
		TotalGeneral: 0,
	}
	doc, err := GenerarPDF(datos)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestGenerarPDFConMuchasLineasPagina(t *testing.T) {
	// Suficientes pagos para forzar varios saltos de página.
	pagos := make([]models.Pago, 200)
	for i := range pagos {
		pagos[i] = models.Pago{Total: 1000}
	}
	doc, err := GenerarPDF(DatosInforme{
		Generado:     time.Now(),
		Pagos:        pagos,
		TotalGeneral: TotalPagos(pagos),
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestNombreArchivo(t *testing.T) {
	generado := time.Date(2025, 11, 17, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, "informe_caffeflux_2025-11-17.pdf", NombreArchivo(generado))
}
