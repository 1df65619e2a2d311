package ventas

import (
	"sync"

	"github.com/ItaloGG9/CaffeFlux-Frontend/internal/models"
)

// Store guarda los carritos por sesión, solo en memoria. El carrito es estado
// transitorio de la vista: se pierde al reiniciar el proceso igual que se
// perdía al recargar la página, y nunca se persiste hasta confirmar la venta.
type Store struct {
	mu       sync.RWMutex
	carritos map[string]*Carrito
}

func NewStore() *Store {
	return &Store{carritos: make(map[string]*Carrito)}
}

func (s *Store) carrito(sesion string) *Carrito {
	car := s.carritos[sesion]
	if car == nil {
		car = &Carrito{}
		s.carritos[sesion] = car
	}
	return car
}

// copia devuelve una instantánea independiente para responder sin exponer el
// slice interno.
func copia(car *Carrito) Carrito {
	out := Carrito{Total: car.Total, Lineas: make([]LineaCarrito, len(car.Lineas))}
	copy(out.Lineas, car.Lineas)
	return out
}

func (s *Store) Agregar(sesion string, p models.Producto) Carrito {
	s.mu.Lock()
	defer s.mu.Unlock()
	car := s.carrito(sesion)
	car.Agregar(p)
	return copia(car)
}

func (s *Store) Quitar(sesion string, idProducto int) Carrito {
	s.mu.Lock()
	defer s.mu.Unlock()
	car := s.carrito(sesion)
	car.Quitar(idProducto)
	return copia(car)
}

func (s *Store) Ver(sesion string) Carrito {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if car := s.carritos[sesion]; car != nil {
		return copia(car)
	}
	return Carrito{}
}

// Venta arma el cuerpo de la venta; vacio indica que no hay nada que cobrar.
func (s *Store) Venta(sesion string) (venta models.Venta, vacio bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	car := s.carritos[sesion]
	if car == nil || car.Vacio() {
		return models.Venta{}, true
	}
	return car.AVenta(), false
}

// Reset vacía el carrito tras una venta confirmada.
func (s *Store) Reset(sesion string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carritos, sesion)
}
