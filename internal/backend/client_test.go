package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/productos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"nombre":"Café","precio_venta":1000}]`))
	}))
	defer srv.Close()

	productos, err := New(srv.URL).ListProductos(context.Background())
	require.NoError(t, err)
	require.Len(t, productos, 1)
	assert.Equal(t, "Café", productos[0].Nombre)
	assert.Equal(t, 1000.0, productos[0].PrecioVenta)
}

func TestOpenTurnoEnviaElCuerpoEsperado(t *testing.T) {
	var recibido map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/turnos/open", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		w.Write([]byte(`{"id_turno":7,"usuario_responsable":"Ana","fondo_inicial":0,"hora_apertura":"2025-11-17T12:00:00Z","hora_cierre":null}`))
	}))
	defer srv.Close()

	turno, err := New(srv.URL).OpenTurno(context.Background(), models.AbrirTurnoRequest{
		UsuarioResponsable: "Ana",
		FondoInicial:       0,
		HoraApertura:       "2025-11-17T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", turno.UsuarioResponsable)
	assert.Equal(t, map[string]any{
		"usuario_responsable": "Ana",
		"fondo_inicial":       0.0,
		"hora_apertura":       "2025-11-17T12:00:00Z",
	}, recibido)
}

func TestErrorConDetalleEstructurado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"Ya existe un turno abierto para ese usuario"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListTurnos(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Ya existe un turno abierto para ese usuario", apiErr.Detail)
	assert.Equal(t, apiErr.Detail, apiErr.Error())
}

func TestErrorSinDetalleUsaElCuerpoCrudo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("algo explotó\n"))
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteTurno(context.Background(), 3)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "algo explotó", apiErr.Detail)
}

func TestErrorDeConexionNoEsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // puerto muerto a propósito

	_, err := New(srv.URL).ListPagos(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCerrarTodosTurnos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/turnos/cerrar_todos", r.URL.Path)
		w.Write([]byte(`{"message":"3 turnos cerrados"}`))
	}))
	defer srv.Close()

	msg, err := New(srv.URL).CerrarTodosTurnos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3 turnos cerrados", msg)
}

func TestCerrarTodosTurnosToleraCuerpoNoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	msg, err := New(srv.URL).CerrarTodosTurnos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", msg)
}
