package importer

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"studentapi/internal/model"
	"studentapi/internal/validation"
)

func TestNormalize(t *testing.T) {
	raw := model.RawRow{
		"nombre":      " Ana ",
		"apellido":    "Ruiz",
		"correo":      "ana@x.edu",
		"edad":        "20",
		"semestre":    "3",
		"jornada":     "Diurna",
		"sexo":        "Femenino",
		"telefono":    "1",
		"direccion":   "a",
		"universidad": "U",
	}

	s := Normalize(raw)

	assert.Equal(t, model.Student{
		Nombre:      "Ana",
		Apellido:    "Ruiz",
		Telefono:    "1",
		Edad:        20,
		Correo:      "ana@x.edu",
		Direccion:   "a",
		Universidad: "U",
		Semestre:    3,
		Jornada:     "Diurna",
		Sexo:        "Femenino",
	}, s)
	assert.True(t, validation.New().Validate(s).Valid)
}

func TestNormalize_MissingAndBadValues(t *testing.T) {
	s := Normalize(model.RawRow{"edad": "abc", "jornada": "  Nocturna\t"})

	assert.Equal(t, 0, s.Edad)
	assert.Equal(t, 0, s.Semestre)
	assert.Equal(t, "", s.Nombre)
	assert.Equal(t, "Nocturna", s.Jornada)

	res := validation.New().Validate(s)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Messages(), "Edad debe estar entre 16 y 100")
}

func TestNormalize_ZeroCollapsesWithParseFailure(t *testing.T) {
	assert.Equal(t, Normalize(model.RawRow{"edad": "0"}), Normalize(model.RawRow{"edad": "x"}))
}

func TestNormalize_Idempotent(t *testing.T) {
	first := Normalize(model.RawRow{
		"nombre": "  Luis ", "apellido": " Gómez", "correo": " luis@u.co ", "edad": " 30 ",
		"semestre": "12", "jornada": "Nocturna ", "sexo": " Masculino", "telefono": " 300 ",
		"direccion": "Calle 1 ", "universidad": " UNAL",
	})

	second := Normalize(rowOf(first))

	assert.Equal(t, first, second)
}

func rowOf(s model.Student) model.RawRow {
	return model.RawRow{
		"nombre":      s.Nombre,
		"apellido":    s.Apellido,
		"telefono":    s.Telefono,
		"edad":        strconv.Itoa(s.Edad),
		"correo":      s.Correo,
		"direccion":   s.Direccion,
		"universidad": s.Universidad,
		"semestre":    strconv.Itoa(s.Semestre),
		"jornada":     s.Jornada,
		"sexo":        s.Sexo,
	}
}
