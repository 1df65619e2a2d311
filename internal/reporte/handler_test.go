package reporte

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/backend"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendInforme struct {
	srv          *httptest.Server
	hits         atomic.Int64
	cierreHits   atomic.Int64
	fallarCierre bool
	pagosJSON    string
	turnosJSON   string
}

func nuevoBackendInforme(t *testing.T) *backendInforme {
	bi := &backendInforme{pagosJSON: "[]", turnosJSON: "[]"}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/pagos", func(w http.ResponseWriter, r *http.Request) {
		bi.hits.Add(1)
		w.Write([]byte(bi.pagosJSON))
	})
	mux.HandleFunc("GET /api/turnos", func(w http.ResponseWriter, r *http.Request) {
		bi.hits.Add(1)
		w.Write([]byte(bi.turnosJSON))
	})
	mux.HandleFunc("PUT /api/turnos/cerrar_todos", func(w http.ResponseWriter, r *http.Request) {
		bi.hits.Add(1)
		bi.cierreHits.Add(1)
		if bi.fallarCierre {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"no se pudo"}`))
			return
		}
		w.Write([]byte(`{"message":"Turnos cerrados"}`))
	})
	bi.srv = httptest.NewServer(mux)
	t.Cleanup(bi.srv.Close)
	return bi
}

func appInforme(bi *backendInforme) *fiber.App {
	api := backend.New(bi.srv.URL)
	app := fiber.New()
	app.Post("/ui/cerrar-dia", CerrarDiaHandler(api, &Estado{}))
	return app
}

func cerrarDiaReq(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/ui/cerrar-dia", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCerrarDiaSinConfirmarNoTocaElBackend(t *testing.T) {
	bi := nuevoBackendInforme(t)
	app := appInforme(bi)

	res, err := app.Test(cerrarDiaReq(`{"confirmar":false}`), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, int64(0), bi.hits.Load())
}

func TestCerrarDiaSinVentasGeneraPDFYLimpia(t *testing.T) {
	bi := nuevoBackendInforme(t)
	app := appInforme(bi)

	res, err := app.Test(cerrarDiaReq(`{"confirmar":true}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	assert.Equal(t, "application/pdf", res.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, res.Header.Get(fiber.HeaderContentDisposition), "informe_caffeflux_")
	assert.Equal(t, "ok", res.Header.Get("X-Cierre-Estado"))
	assert.Contains(t, res.Header.Get("X-Cierre-Mensaje"), "Informe generado correctamente.")

	doc, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc[:4]))

	// Aun sin ventas, la limpieza se intenta igual.
	assert.Equal(t, int64(1), bi.cierreHits.Load())
}

func TestCerrarDiaConDatos(t *testing.T) {
	bi := nuevoBackendInforme(t)
	bi.pagosJSON = `[{"metodo_pago":"efectivo","total":3500,"productos":[{"id_producto":1,"nombre":"Café","cantidad":2,"precio_unitario":1000}]}]`
	bi.turnosJSON = `[
		{"id_turno":1,"usuario_responsable":"Ana","hora_apertura":"2025-11-17T08:00:00","hora_cierre":"2025-11-17T17:00:00"},
		{"id_turno":2,"usuario_responsable":"Luis","hora_apertura":"2025-11-17T09:00:00","hora_cierre":null}
	]`
	app := appInforme(bi)

	res, err := app.Test(cerrarDiaReq(`{"confirmar":true}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", res.Header.Get("X-Cierre-Estado"))
}

func TestCerrarDiaConLimpiezaFallidaEntregaElPDFIgual(t *testing.T) {
	bi := nuevoBackendInforme(t)
	bi.fallarCierre = true
	app := appInforme(bi)

	res, err := app.Test(cerrarDiaReq(`{"confirmar":true}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	assert.Equal(t, "error", res.Header.Get("X-Cierre-Estado"))
	assert.Contains(t, res.Header.Get("X-Cierre-Mensaje"), "hubo un error al cerrar los turnos")

	doc, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestCerrarDiaConBackendCaidoNoDescarga(t *testing.T) {
	bi := nuevoBackendInforme(t)
	bi.srv.Close() // backend muerto antes de empezar
	app := appInforme(bi)

	res, err := app.Test(cerrarDiaReq(`{"confirmar":true}`), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.Equal(t, int64(0), bi.cierreHits.Load())
}

func TestEstadoRechazaCierresSimultaneos(t *testing.T) {
	var e Estado
	require.True(t, e.Iniciar())
	assert.False(t, e.Iniciar())
	e.Terminar()
	assert.True(t, e.Iniciar())
}
