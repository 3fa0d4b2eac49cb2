package property

import (
	"errors"
	"strings"
)

var ErrPropertyNotFound = errors.New("property not found")

// ID is the stable key stored in reservations.property_id.
type ID string

func (id ID) String() string { return string(id) }

type Property struct {
	id       ID
	name     string
	colorTag string
}

func (p Property) ID() ID           { return p.id }
func (p Property) Name() string     { return p.name }
func (p Property) ColorTag() string { return p.colorTag }

// The rental portfolio is fixed in code; adding a property is a deploy.
var catalog = []Property{
	{id: "1", name: "Beach House", colorTag: "#E5DEFF"},
	{id: "2", name: "Mountain Cabin", colorTag: "#F2FCE2"},
	{id: "3", name: "City Apartment", colorTag: "#FEC6A1"},
	{id: "4", name: "Lake House", colorTag: "#D3E4FD"},
}

// All returns a copy of the catalog in display order.
func All() []Property {
	out := make([]Property, len(catalog))
	copy(out, catalog)
	return out
}

func FindByID(id ID) (Property, error) {
	for _, p := range catalog {
		if p.id == id {
			return p, nil
		}
	}
	return Property{}, ErrPropertyNotFound
}

// ParseID validates a raw id against the catalog.
func ParseID(s string) (ID, error) {
	p, err := FindByID(ID(strings.TrimSpace(s)))
	if err != nil {
		return "", err
	}
	return p.id, nil
}
