/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package fields

import (
	"fmt"
	"strings"

	"github.com/DocCert/DocCert/common/interfaces"
)

// Fields is an ordered list of key/value pairs attached to a log message
type Fields struct {
	Fields []Field
}

type Field struct {
	K string
	V any
}

// Name returns the key of the field to implement the NVPair interface
func (f Field) Name() string {
	return f.K
}

// Value returns the value of the field to implement the NVPair interface
func (f Field) Value() any {
	return f.V
}

func NewFields(fields ...Field) *Fields {
	return &Fields{Fields: fields}
}

func (f *Fields) Append(fields ...Field) {
	f.Fields = append(f.Fields, fields...)
}

func (f *Fields) AppendKV(key string, value any) {
	f.Fields = append(f.Fields, Field{K: key, V: value})
}

func NewField(key string, value any) Field {
	return Field{K: key, V: value}
}

// Secret returns a field whose value only reveals the last four characters.
// Tokens must never be written to a log file in full.
func Secret(key string, value string) Field {
	if value == "" {
		return Field{K: key, V: "<none>"}
	}
	if len(value) <= 8 {
		return Field{K: key, V: "****"}
	}
	return Field{K: key, V: "****" + value[len(value)-4:]}
}

// ToText converts the Fields to a string
func (f *Fields) ToText() string {
	if f == nil {
		return ""
	}

	if len(f.Fields) == 0 {
		return ""
	}

	parts := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		v := fmt.Sprintf("%v", field.V)
		if strings.ContainsAny(v, " \t") {
			v = fmt.Sprintf("%q", v)
		}
		parts = append(parts, field.K+"="+v)
	}
	return strings.Join(parts, " ")
}

// ToPairs implements the ToPairs method
func (f *Fields) ToPairs() []interfaces.NVPair {
	if f == nil {
		return nil
	}
	pairs := make([]interfaces.NVPair, len(f.Fields))
	for i, field := range f.Fields {
		pairs[i] = field
	}
	return pairs
}
