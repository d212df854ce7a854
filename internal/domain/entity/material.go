package entity

import "time"

// Material representa una unidad física de material con código interno de 7 dígitos.
// El estado efectivo (caducado, vence prox, disponible...) no se persiste: se deriva
// de Caducidad, OperarioNumero y Estado con la fecha actual (ver domain/material).
//
// Estado guarda solo el estado "administrativo": precintado al registrar, disponible
// tras el desprecintado, y los terminales gastado / retirado / escaneado.
type Material struct {
	ID              string     // surrogate (UUID asignado al crear)
	Codigo          string     // 7 dígitos, único e inmutable
	Caducidad       string     // fecha ISO YYYY-MM-DD; se guarda como texto para poder representar fechas ilegibles
	Estado          string     // "", precintado, disponible, gastado, retirado, escaneado
	OperarioNumero  string     // referencia débil a Operario.Numero; "" = sin asignar
	Ean             string     // EAN-13 opcional; "" = sin EAN
	Descripcion     string     // obligatoria tras el registro
	FechaAsignacion *time.Time // momento de la última asignación; nil si no asignado
	FechaRegistro   time.Time  // alta en almacén; ordena la cola de escaneo
}

// Asignado indica si el material tiene operario.
func (m *Material) Asignado() bool {
	return m.OperarioNumero != ""
}
