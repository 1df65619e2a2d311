package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"
)

// Client habla con el backend REST de CaffeFlux. Cada llamada se resuelve o
// falla exactamente una vez: no hay reintentos ni timeouts, el usuario vuelve
// a disparar la acción si algo falló.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// APIError es un error reportado por el backend con código de estado. Cuando
// la respuesta trae el campo estructurado "detail" se usa ese texto; si no,
// el cuerpo crudo.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("el backend respondió %d", e.Status)
}

type cuerpoDetalle struct {
	Detail string `json:"detail"`
}

type cuerpoMensaje struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decodificando respuesta del backend: %w", err)
		}
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("conexión con el backend: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("leyendo respuesta del backend: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode}
		var d cuerpoDetalle
		if json.Unmarshal(data, &d) == nil && d.Detail != "" {
			apiErr.Detail = d.Detail
		} else {
			apiErr.Detail = strings.TrimSpace(string(data))
		}
		return nil, apiErr
	}
	return data, nil
}

// ListProductos trae el catálogo. GET /productos
func (c *Client) ListProductos(ctx context.Context) ([]models.Producto, error) {
	var productos []models.Producto
	if err := c.do(ctx, http.MethodGet, "/productos", nil, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

// CreateVenta registra una venta. POST /ventas
func (c *Client) CreateVenta(ctx context.Context, venta models.Venta) error {
	return c.do(ctx, http.MethodPost, "/ventas", venta, nil)
}

// OpenTurno abre un turno y devuelve el turno creado. POST /api/turnos/open
func (c *Client) OpenTurno(ctx context.Context, req models.AbrirTurnoRequest) (models.Turno, error) {
	var turno models.Turno
	if err := c.do(ctx, http.MethodPost, "/api/turnos/open", req, &turno); err != nil {
		return models.Turno{}, err
	}
	return turno, nil
}

// ListTurnos trae todos los turnos, abiertos y cerrados. GET /api/turnos
func (c *Client) ListTurnos(ctx context.Context) ([]models.Turno, error) {
	var turnos []models.Turno
	if err := c.do(ctx, http.MethodGet, "/api/turnos", nil, &turnos); err != nil {
		return nil, err
	}
	return turnos, nil
}

// CloseTurno cierra un turno. POST /api/turnos/close
func (c *Client) CloseTurno(ctx context.Context, req models.CerrarTurnoRequest) error {
	return c.do(ctx, http.MethodPost, "/api/turnos/close", req, nil)
}

// DeleteTurno elimina definitivamente un turno. DELETE /api/turnos/{id}
func (c *Client) DeleteTurno(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/turnos/%d", id), nil, nil)
}

// CerrarTodosTurnos cierra todos los turnos activos y devuelve el mensaje del
// backend, si lo hay. Es el único contrato destructivo del cierre de día: los
// pagos y los turnos ya cerrados se conservan como respaldo.
// PUT /api/turnos/cerrar_todos
func (c *Client) CerrarTodosTurnos(ctx context.Context) (string, error) {
	data, err := c.doRaw(ctx, http.MethodPut, "/api/turnos/cerrar_todos", nil)
	if err != nil {
		return "", err
	}
	// El mensaje es cortesía del backend; si el cuerpo no lo trae, da igual.
	var m cuerpoMensaje
	_ = json.Unmarshal(data, &m)
	return m.Message, nil
}

// ListPagos trae todos los pagos registrados. GET /api/pagos
func (c *Client) ListPagos(ctx context.Context) ([]models.Pago, error) {
	var pagos []models.Pago
	if err := c.do(ctx, http.MethodGet, "/api/pagos", nil, &pagos); err != nil {
		return nil, err
	}
	return pagos, nil
}
