package importer

import (
	"strings"

	"studentapi/internal/model"
)

// Normalize coerces a raw text row into the record shape. It never fails:
// text fields are trimmed (missing ones become ""), integer fields that are
// missing or unparsable become 0 so range validation rejects the row.
func Normalize(raw model.RawRow) model.Student {
	text := func(key string) string {
		return strings.TrimSpace(raw[key])
	}
	return model.Student{
		Nombre:      text("nombre"),
		Apellido:    text("apellido"),
		Telefono:    text("telefono"),
		Edad:        model.ParseInt(raw["edad"]),
		Correo:      text("correo"),
		Direccion:   text("direccion"),
		Universidad: text("universidad"),
		Semestre:    model.ParseInt(raw["semestre"]),
		Jornada:     text("jornada"),
		Sexo:        text("sexo"),
	}
}
