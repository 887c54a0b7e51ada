package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	ErrMixedOperatingUnitAccounts = errors.New("no se pueden crear movimientos de stock con cuentas de origen y destino distintas entre unidades operativas diferentes")
	ErrPriceDiffAccountMissing    = errors.New("configure la cuenta de diferencia de precio en el producto o su categoría")
	ErrAccountingDataMissing      = errors.New("configure el diario de stock y la cuenta de valoración en la categoría del producto")
	ErrUnbalancedMove             = errors.New("el asiento contable no cuadra")
	ErrModuleNotInstallable       = errors.New("el addon no es instalable")
)

// UserError rechazo de una regla de negocio; se muestra tal cual al usuario
// y aborta la unidad de trabajo en curso.
type UserError struct {
	Err    error
	Detail string // contexto opcional (producto, movimiento)
}

// NewUserError envuelve err como rechazo de negocio.
func NewUserError(err error, detail string) *UserError {
	return &UserError{Err: err, Detail: detail}
}

func (e *UserError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " (" + e.Detail + ")"
}

func (e *UserError) Unwrap() error { return e.Err }

// IsUserError informa si err (o alguno de los que envuelve) es un rechazo de negocio.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}
