package entity

// Roles de operario. Deben coincidir con el CHECK de la tabla operarios.
const (
	RolOperario   = "operario"   // solo puede asignarse materiales
	RolAlmacenero = "almacenero" // registrar, devolver, retirar, gastar, asignar
	RolAdmin      = "admin"      // todo, incluida la gestión de operarios e importaciones
)

// RolValido indica si el rol es uno de los conocidos.
func RolValido(rol string) bool {
	switch rol {
	case RolOperario, RolAlmacenero, RolAdmin:
		return true
	}
	return false
}

// Operario representa a un trabajador identificado por su número de empleado.
// La baja es lógica (Activo=false) y se rechaza mientras tenga materiales asignados.
type Operario struct {
	Numero  string // clave de negocio, única
	Nombre  string
	Rol     string // ver constantes Rol*
	Activo  bool
	PinHash string // hash bcrypt del PIN de acceso; "" = entra solo con el número
}

// Display devuelve "numero - nombre" para mostrar en listados.
func (o *Operario) Display() string {
	if o == nil {
		return "-"
	}
	if o.Nombre == "" {
		return o.Numero
	}
	return o.Numero + " - " + o.Nombre
}
