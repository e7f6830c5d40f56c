package model

import (
	"encoding/json"
	"math"
	"strings"
)

// RawRow is one data row of an uploaded table keyed by its trimmed header names.
// Values are kept exactly as they appeared in the file.
type RawRow map[string]string

// FlexInt decodes a JSON number or string into an int.
// Strings use leading-integer parsing, numbers are truncated and anything else decodes to 0.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		if math.IsInf(x, 0) || x > math.MaxInt32 || x < math.MinInt32 {
			*n = 0
			return nil
		}
		*n = FlexInt(int(math.Trunc(x)))
	case string:
		*n = FlexInt(ParseInt(x))
	default:
		*n = 0
	}
	return nil
}

// StudentInput is the request body accepted by create and update.
// Any id or createdAt present in the body is ignored.
type StudentInput struct {
	Nombre      string  `json:"nombre"`
	Apellido    string  `json:"apellido"`
	Telefono    string  `json:"telefono"`
	Edad        FlexInt `json:"edad"`
	Correo      string  `json:"correo"`
	Direccion   string  `json:"direccion"`
	Universidad string  `json:"universidad"`
	Semestre    FlexInt `json:"semestre"`
	Jornada     string  `json:"jornada"`
	Sexo        string  `json:"sexo"`
}

// Student converts the loosely typed input into the canonical record shape.
func (in StudentInput) Student() Student {
	return Student{
		Nombre:      in.Nombre,
		Apellido:    in.Apellido,
		Telefono:    in.Telefono,
		Edad:        int(in.Edad),
		Correo:      in.Correo,
		Direccion:   in.Direccion,
		Universidad: in.Universidad,
		Semestre:    int(in.Semestre),
		Jornada:     in.Jornada,
		Sexo:        in.Sexo,
	}
}

// ParseInt reads an optional sign followed by decimal digits from the start of s,
// ignoring surrounding whitespace and any trailing text. It returns 0 when no digits
// are found, so "20" and "20 años" give 20 while "abc" and "" give 0.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > math.MaxInt32 {
			return 0
		}
	}
	if neg {
		return -n
	}
	return n
}
