package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// HoraUTC es un instante en UTC tal como lo entrega el backend. El backend
// guarda las horas en UTC pero algunas versiones no incluyen el marcador de
// zona; al decodificar, un valor sin zona se interpreta como UTC, y uno con
// zona se respeta tal cual. Así la corrección queda en el borde y las vistas
// trabajan con time.Time ya normalizado.
type HoraUTC struct {
	time.Time
}

var layoutsSinZona = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (h *HoraUTC) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = HoraUTC{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*h = HoraUTC{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*h = HoraUTC{t.UTC()}
		return nil
	}
	for _, layout := range layoutsSinZona {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*h = HoraUTC{t}
			return nil
		}
	}
	return fmt.Errorf("hora inválida: %q", s)
}

func (h HoraUTC) MarshalJSON() ([]byte, error) {
	if h.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(h.UTC().Format(time.RFC3339))
}

// FormatoCompleto muestra fecha y hora en el huso del local, para las
// tarjetas de turnos.
func (h HoraUTC) FormatoCompleto() string {
	if h.IsZero() {
		return "N/A"
	}
	return h.Local().Format("02-01-2006 15:04:05")
}

// FormatoHora muestra solo hora y minuto, para el informe del día.
func (h HoraUTC) FormatoHora() string {
	if h.IsZero() {
		return "?"
	}
	return h.Local().Format("15:04")
}
