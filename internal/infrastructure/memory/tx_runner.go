package memory

import (
	"context"

	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// TxRunner serializa los callbacks transaccionales con un mutex: dos
// operaciones mutadoras nunca se entrelazan. No hay rollback real; los casos
// de uso validan antes de escribir, así que un fn que falla no deja escrituras
// a medias.
type TxRunner struct {
	s *Store
}

// NewTxRunner crea el ejecutor transaccional del almacén en memoria.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (t *TxRunner) Run(_ context.Context, fn func(repository.MaterialRepository, repository.CatalogoRepository) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()
	return fn(NewMaterialRepository(t.s), NewCatalogoRepository(t.s))
}
