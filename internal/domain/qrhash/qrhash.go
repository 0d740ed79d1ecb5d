// Package qrhash genera y valida el identificador escaneable de un material.
//
// El hash se deriva de id + nombre + instante de creación truncando un
// digest SHA-256 a 16 caracteres hexadecimales. La receta no es
// criptográficamente load-bearing: la unicidad real la garantiza el
// constraint único de la base de datos más el reintento de acuñación
// (ver MaterialUseCase.Create).
package qrhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Length longitud del hash en caracteres hexadecimales.
const Length = 16

var validHash = regexp.MustCompile(`^[0-9a-f]{16}$`)

// New acuña un hash de 16 caracteres hexadecimales para el material.
// Llamadas con el mismo id y nombre en instantes distintos producen
// hashes distintos, lo que permite regenerar ante una colisión.
func New(id int64, name string, at time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d-%s-%d", id, name, at.UnixNano())))
	return hex.EncodeToString(sum[:])[:Length]
}

// Normalize recorta espacios, pasa a minúscula y valida el formato.
// Devuelve false si el resultado no son exactamente 16 caracteres [0-9a-f].
func Normalize(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !validHash.MatchString(s) {
		return "", false
	}
	return s, true
}

// Valid reporta si s ya es un hash bien formado (minúscula, 16 hex).
func Valid(s string) bool {
	return validHash.MatchString(s)
}
