package entity

import (
	"strings"
	"time"
)

// PostalAddress dirección postal de una bodega.
type PostalAddress struct {
	Street  string
	Street2 string
	City    string
	State   string
	Zip     string
	Country string
}

// IsEmpty informa si no hay ningún dato de dirección.
func (a PostalAddress) IsEmpty() bool {
	return a == PostalAddress{}
}

// Lines devuelve la dirección en líneas imprimibles, omitiendo las vacías.
func (a PostalAddress) Lines() []string {
	cityLine := strings.TrimSpace(strings.Join(nonBlank(a.Zip, a.City, a.State), " "))
	return nonBlank(a.Street, a.Street2, cityLine, a.Country)
}

func nonBlank(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Warehouse representa una bodega; puede pertenecer a una unidad operativa.
type Warehouse struct {
	ID              string
	CompanyID       string
	OperatingUnitID OptionalID
	Code            string
	Name            string
	Address         PostalAddress
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
