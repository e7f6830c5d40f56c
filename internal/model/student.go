package model

import (
	"time"
)

// Accepted values for Student.Jornada and Student.Sexo.
const (
	JornadaDiurna   = "Diurna"
	JornadaNocturna = "Nocturna"

	SexoMasculino = "Masculino"
	SexoFemenino  = "Femenino"
)

// CreatedAtLayout matches the ISO-8601 form used for createdAt (millisecond precision, UTC).
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Student is the single record kept by the application.
// ID is assigned by the store and CreatedAt is set once on creation; updates never touch either.
// The validate tags are consumed by the validation package.
type Student struct {
	ID          string `json:"id,omitempty"`
	Nombre      string `json:"nombre" validate:"notblank"`
	Apellido    string `json:"apellido" validate:"notblank"`
	Telefono    string `json:"telefono"`
	Edad        int    `json:"edad" validate:"min=16,max=100"`
	Correo      string `json:"correo" validate:"correo"`
	Direccion   string `json:"direccion"`
	Universidad string `json:"universidad"`
	Semestre    int    `json:"semestre" validate:"min=1,max=12"`
	Jornada     string `json:"jornada" validate:"oneof=Diurna Nocturna"`
	Sexo        string `json:"sexo" validate:"oneof=Masculino Femenino"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// FormatCreatedAt renders t the way createdAt is persisted.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// CreatedAtMillis returns createdAt as Unix milliseconds.
// Records without a parseable timestamp report 0 so they sort as the oldest.
func (s Student) CreatedAtMillis() int64 {
	if s.CreatedAt == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339Nano, s.CreatedAt)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// Fields returns a copy of s with ID and CreatedAt cleared, i.e. the mutable part of the record.
func (s Student) Fields() Student {
	s.ID = ""
	s.CreatedAt = ""
	return s
}
