package entity

import "time"

// EntradaCatalogo asocia un EAN-13 con su descripción canónica.
// Se escribe en cada registro/actualización con EAN y descripción, y se lee para
// autocompletar la descripción al registrar un material con EAN conocido.
type EntradaCatalogo struct {
	Ean                string
	Descripcion        string
	FechaActualizacion time.Time
}
