package entity

// OptionalID referencia opcional a otro registro (unidad operativa, picking, partner...).
// El valor cero es "sin referencia"; un ID vacío nunca se considera asignado.
type OptionalID struct {
	id  string
	set bool
}

// NoID referencia vacía.
var NoID = OptionalID{}

// SomeID construye una referencia asignada. SomeID("") equivale a NoID.
func SomeID(id string) OptionalID {
	if id == "" {
		return NoID
	}
	return OptionalID{id: id, set: true}
}

// OptionalIDFrom convierte un puntero (columna NULL en BD) en referencia.
func OptionalIDFrom(id *string) OptionalID {
	if id == nil {
		return NoID
	}
	return SomeID(*id)
}

// IsSet informa si la referencia apunta a un registro.
func (o OptionalID) IsSet() bool { return o.set }

// Value devuelve el ID y si está asignado.
func (o OptionalID) Value() (string, bool) { return o.id, o.set }

// String devuelve el ID o "" si no está asignado.
func (o OptionalID) String() string { return o.id }

// Ptr devuelve nil si no está asignado (para escribir NULL en BD o JSON).
func (o OptionalID) Ptr() *string {
	if !o.set {
		return nil
	}
	id := o.id
	return &id
}

// Equal compara dos referencias; dos referencias vacías son iguales.
func (o OptionalID) Equal(other OptionalID) bool {
	return o.set == other.set && o.id == other.id
}

// Or devuelve o si está asignado, si no other.
func (o OptionalID) Or(other OptionalID) OptionalID {
	if o.set {
		return o
	}
	return other
}

// FirstSetID recorre la cadena en orden y devuelve la primera referencia asignada.
func FirstSetID(chain ...OptionalID) OptionalID {
	for _, id := range chain {
		if id.IsSet() {
			return id
		}
	}
	return NoID
}
