package reporte

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// DatosInforme reúne todo lo que entra al informe del día.
type DatosInforme struct {
	Generado       time.Time
	Pagos          []models.Pago
	TurnosCerrados []models.Turno
	TotalGeneral   float64
}

// TotalPagos suma los totales de los pagos; un total ausente cuenta como 0.
// El backend no ofrece agregación, así que la suma se hace aquí sobre la
// lista completa de pagos. Si el backend llega a exponer un endpoint de
// resumen, este es el único punto a reemplazar.
func TotalPagos(pagos []models.Pago) float64 {
	var total float64
	for _, p := range pagos {
		total += p.Total
	}
	return total
}

// SoloCerrados filtra los turnos que ya tienen hora de cierre; son los que
// entran al cuerpo del informe.
func SoloCerrados(turnos []models.Turno) []models.Turno {
	cerrados := make([]models.Turno, 0, len(turnos))
	for _, t := range turnos {
		if !t.Activo() {
			cerrados = append(cerrados, t)
		}
	}
	return cerrados
}

// lineasResumen arma las líneas del resumen de ventas: el desglose por
// producto de cada pago, o la línea de respaldo cuando el pago no trae
// productos registrados.
func lineasResumen(pagos []models.Pago) []string {
	if len(pagos) == 0 {
		return []string{"No se registraron ventas en este período."}
	}
	var lineas []string
	for _, p := range pagos {
		if len(p.Productos) > 0 {
			for _, prod := range p.Productos {
				lineas = append(lineas, fmt.Sprintf("- %s x%d: $%.2f",
					prod.Nombre, prod.Cantidad, prod.PrecioUnitario*float64(prod.Cantidad)))
			}
		} else {
			lineas = append(lineas, fmt.Sprintf("- Venta sin productos registrados: $%.2f", p.Total))
		}
	}
	return lineas
}

// lineasTurnos arma las líneas de la sección de turnos cerrados.
func lineasTurnos(turnos []models.Turno) []string {
	if len(turnos) == 0 {
		return []string{"No hay turnos cerrados registrados."}
	}
	var lineas []string
	for _, t := range turnos {
		empleado := t.UsuarioResponsable
		if empleado == "" {
			empleado = "Desconocido"
		}
		fin := "?"
		if t.HoraCierre != nil {
			fin = t.HoraCierre.FormatoHora()
		}
		lineas = append(lineas, fmt.Sprintf("Empleado: %s | inicio: %s | fin: %s",
			empleado, t.HoraApertura.FormatoHora(), fin))
	}
	return lineas
}

const (
	margenIzq     = 20.0
	margenDetalle = 25.0
	topePagina    = 270.0
	altoLinea     = 7.0
)

// GenerarPDF dibuja el informe del día: título, metadatos de generación,
// resumen de ventas, total general y turnos cerrados, con salto de página
// cuando el cursor llega al borde inferior.
func GenerarPDF(datos DatosInforme) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	y := 20.0

	escribir := func(estilo string, tam float64, x float64, texto string) {
		if y > topePagina {
			pdf.AddPage()
			y = 20.0
		}
		pdf.SetFont("Helvetica", estilo, tam)
		pdf.Text(x, y, tr(texto))
	}

	// Título centrado
	titulo := "Informe Del Día - CaffeFlux"
	pdf.SetFont("Helvetica", "BI", 20)
	escribir("BI", 20, (210-pdf.GetStringWidth(tr(titulo)))/2, titulo)
	y += 15

	// Metadatos de generación
	escribir("", 12, margenIzq, "Fecha: "+datos.Generado.Format("02-01-2006"))
	y += altoLinea
	escribir("", 12, margenIzq, "Generado a las: "+datos.Generado.Format("15:04:05"))
	y += 15

	// Resumen de ventas
	escribir("B", 16, margenIzq, "Resumen de Ventas")
	y += 10
	for _, linea := range lineasResumen(datos.Pagos) {
		escribir("", 12, margenDetalle, linea)
		y += altoLinea
	}
	y += 5

	escribir("B", 12, margenIzq, fmt.Sprintf("TOTAL DEL DÍA: $%.2f", datos.TotalGeneral))
	y += 15

	// Turnos cerrados
	escribir("B", 16, margenIzq, "Turnos Cerrados:")
	y += 10
	for _, linea := range lineasTurnos(datos.TurnosCerrados) {
		escribir("", 12, margenDetalle, linea)
		y += altoLinea
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NombreArchivo arma el nombre de descarga con la fecha del día.
func NombreArchivo(generado time.Time) string {
	return fmt.Sprintf("informe_caffeflux_%s.pdf", generado.Format("2006-01-02"))
}
