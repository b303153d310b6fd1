// Package typescript renders TypeScript source fragments (file headers, JSDoc
// blocks, type names and method signatures) from a normalized API description.
// Every function is a pure transformation; the calling generator owns file
// assembly and output.
package typescript

import (
	"encoding/json"
	"fmt"

	"github.com/angular-template/swagen-typescript-language/model"
)

// UnresolvableTypeError reports a Property that declares none of the three
// type kinds (primitive, complex, enum).
type UnresolvableTypeError struct {
	Property model.Property
}

func (e *UnresolvableTypeError) Error() string {
	return fmt.Sprintf("typescript: property declares no primitive, complex or enum type: %s", dumpProperty(e.Property))
}

// UnknownPrimitiveError reports a Property whose primitive kind is outside the
// recognized set.
type UnknownPrimitiveError struct {
	Property model.Property
}

func (e *UnknownPrimitiveError) Error() string {
	return fmt.Sprintf("typescript: unrecognized primitive %q: %s", e.Property.Primitive, dumpProperty(e.Property))
}

// dumpProperty serializes the offending property for diagnostics.
func dumpProperty(p model.Property) string {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Sprintf("%+v", p)
	}
	return string(b)
}

// DataType resolves a property to its TypeScript type name. Complex and enum
// type names are qualified with namespace when it is non-empty; primitives
// never are. Array properties get a "[]" suffix after the base name resolves.
//
// A property setting more than one kind resolves with precedence
// primitive > complex > enum.
func DataType(p model.Property, namespace string) (string, error) {
	var name string
	switch {
	case p.Primitive != "":
		resolved, err := primitiveType(p)
		if err != nil {
			return "", err
		}
		name = resolved
	case p.Complex != "":
		name = qualify(p.Complex, namespace)
	case p.Enum != "":
		name = qualify(p.Enum, namespace)
	default:
		return "", &UnresolvableTypeError{Property: p}
	}
	if p.IsArray {
		name += "[]"
	}
	return name, nil
}

// primitiveType maps a primitive kind (refined by SubType for strings) to its
// TypeScript spelling.
func primitiveType(p model.Property) (string, error) {
	switch p.Primitive {
	case model.Integer, model.Number:
		return "number", nil
	case model.String:
		switch p.SubType {
		case model.DateTime:
			return "Date", nil
		case model.Byte:
			return "number", nil
		default:
			// uuid and plain strings map to string.
			return "string", nil
		}
	case model.Boolean:
		return "boolean", nil
	case model.File, model.Object:
		return "any", nil
	default:
		return "", &UnknownPrimitiveError{Property: p}
	}
}

func qualify(name, namespace string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}
