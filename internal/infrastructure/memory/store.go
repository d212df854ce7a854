// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Sirve para los tests y para el modo demo (STORE_DRIVER=memory):
// mismo contrato que la implementación PostgreSQL, sin durabilidad.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/materiales-api/internal/domain/entity"
)

// Store guarda materiales, operarios y catálogo en mapas protegidos por un
// RWMutex. Los repositorios y el TxRunner comparten el mismo Store.
type Store struct {
	mu         sync.RWMutex
	txMu       sync.Mutex // serializa los callbacks transaccionales
	materiales map[string]*entity.Material // por código
	operarios  map[string]*entity.Operario // por número
	catalogo   map[string]entity.EntradaCatalogo
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		materiales: make(map[string]*entity.Material),
		operarios:  make(map[string]*entity.Operario),
		catalogo:   make(map[string]entity.EntradaCatalogo),
	}
}

func cloneMaterial(m *entity.Material) *entity.Material {
	c := *m
	if m.FechaAsignacion != nil {
		f := *m.FechaAsignacion
		c.FechaAsignacion = &f
	}
	return &c
}

func cloneOperario(o *entity.Operario) *entity.Operario {
	c := *o
	return &c
}

func ptrTime(t time.Time) *time.Time { return &t }
