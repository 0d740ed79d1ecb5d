// Package location normaliza la jerarquía de ubicación sector/sala.
package location

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize recorta espacios alrededor y aplica title-case palabra por
// palabra: "almacén central" -> "Almacén Central", "3" -> "3".
// cases.Caser tiene estado interno, por eso se construye en cada llamada.
func Normalize(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}
