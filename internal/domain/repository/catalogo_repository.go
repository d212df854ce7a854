package repository

import "context"

// CatalogoRepository puerto del catálogo EAN → descripción canónica.
type CatalogoRepository interface {
	// GetDescripcion devuelve la descripción conocida para el EAN. Busca primero
	// en el catálogo y, si no está, en los propios materiales. El bool indica
	// si se encontró.
	GetDescripcion(ctx context.Context, ean string) (string, bool, error)

	// Upsert fija la descripción canónica del EAN.
	Upsert(ctx context.Context, ean, descripcion string) error
}
