package store

import (
	"encoding/json"
	"fmt"
)

// Codec traduce entre el valor de la celda y el contenido del slot.
// Serialize devuelve nil para indicar que el slot debe eliminarse (valor ausente).
type Codec[T any] struct {
	Parse     func(raw []byte) (T, error)
	Serialize func(v T) ([]byte, error)
}

// JSONCodec serializa con encoding/json.
func JSONCodec[T any]() Codec[T] {
	return Codec[T]{
		Parse: func(raw []byte) (T, error) {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				return v, fmt.Errorf("store: json inválido: %w", err)
			}
			return v, nil
		},
		Serialize: func(v T) ([]byte, error) {
			return json.Marshal(v)
		},
	}
}

// NullableJSONCodec guarda *T como JSON y elimina el slot cuando el puntero es nil.
// Un slot con "null" se lee como ausente.
func NullableJSONCodec[T any]() Codec[*T] {
	return Codec[*T]{
		Parse: func(raw []byte) (*T, error) {
			var v *T
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, fmt.Errorf("store: json inválido: %w", err)
			}
			return v, nil
		},
		Serialize: func(v *T) ([]byte, error) {
			if v == nil {
				return nil, nil
			}
			return json.Marshal(v)
		},
	}
}

// StringCodec guarda el string tal cual; el string vacío elimina el slot.
func StringCodec() Codec[string] {
	return Codec[string]{
		Parse: func(raw []byte) (string, error) { return string(raw), nil },
		Serialize: func(v string) ([]byte, error) {
			if v == "" {
				return nil, nil
			}
			return []byte(v), nil
		},
	}
}
