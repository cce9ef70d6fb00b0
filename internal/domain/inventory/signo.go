package inventory

import "github.com/ncastellon/comercial-api/internal/domain/entity"

// Signo devuelve el efecto de un tipo de movimiento sobre el stock:
// +1 entrada, -1 salida, 0 si el tipo no afecta stock.
// Única función donde se calcula el signo; ningún otro punto del código debe
// re-derivar EsEntrada/AfectaStock por su cuenta.
func Signo(t *entity.TipoMovimiento) int64 {
	if t == nil || !t.AfectaStock {
		return 0
	}
	if t.EsEntrada {
		return 1
	}
	return -1
}

// Delta devuelve el cambio neto de stock de un movimiento: signo * cantidad.
func Delta(t *entity.TipoMovimiento, cantidad int64) int64 {
	return Signo(t) * cantidad
}
