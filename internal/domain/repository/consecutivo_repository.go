package repository

import "context"

// ConsecutivoRepository define el puerto sobre la fila única del consecutivo
// de facturas. Solo el flujo de creación de ventas lo usa, dentro de su
// transacción.
type ConsecutivoRepository interface {
	// GetForUpdate lee el último número consumido bloqueando la fila
	// (SELECT FOR UPDATE): dos asignaciones concurrentes se serializan aquí.
	GetForUpdate(ctx context.Context) (int64, error)
	// Avanzar fija el último número consumido. Estrictamente creciente.
	Avanzar(ctx context.Context, ultimoNumero int64) error
	// Ultimo lee el último número sin bloquear (consulta informativa).
	Ultimo(ctx context.Context) (int64, error)
}
