package entity

import "time"

// Cliente del negocio. Catálogo simple; las ventas lo referencian.
type Cliente struct {
	ID        string
	Nombre    string
	Cedula    string
	Telefono  string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}
