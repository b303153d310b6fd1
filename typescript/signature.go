package typescript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/angular-template/swagen-typescript-language/model"
)

// Usual spellings for the return type of an operation without a successful,
// typed response. VoidTypeVoid is the default.
const (
	VoidTypeVoid      = "void"
	VoidTypeAny       = "any"
	VoidTypeUndefined = "undefined"
	VoidTypeNever     = "never"
)

// Options controls signature rendering.
type Options struct {
	// ModelsNamespace qualifies complex and enum type names ("Models" yields
	// "Models.User"). Empty means unqualified.
	ModelsNamespace string
	// VoidType overrides the default "void" return spelling.
	VoidType string
	// ReturnTypeTransformer post-processes the resolved return type, e.g. to
	// wrap it in Promise<...>. It never applies to parameter types.
	ReturnTypeTransformer func(string) string
}

// ReturnType resolves an operation's return type: the first response whose
// status key parses to an integer in [200,300) and which declares a payload
// wins; anything else falls back to the void spelling. Non-numeric status keys
// such as "default" never match. The transformer, when set, runs last on
// whatever was resolved, fallback included.
func ReturnType(op model.Operation, opts Options) (string, error) {
	resolved := opts.VoidType
	if resolved == "" {
		resolved = VoidTypeVoid
	}
	for _, resp := range op.Responses {
		status, err := strconv.Atoi(resp.Status)
		if err != nil || status < 200 || status >= 300 {
			continue
		}
		if resp.DataType == nil {
			continue
		}
		typ, err := DataType(*resp.DataType, opts.ModelsNamespace)
		if err != nil {
			return "", err
		}
		resolved = typ
		break
	}
	if opts.ReturnTypeTransformer != nil {
		resolved = opts.ReturnTypeTransformer(resolved)
	}
	return resolved, nil
}

// MethodSignature composes "name(param: type, ...): returnType" for one
// operation. Parameters render in declaration order, each resolved through
// DataType with opts.ModelsNamespace; an operation without parameters yields
// an empty parameter list.
func MethodSignature(name string, op model.Operation, opts Options) (string, error) {
	params := make([]string, 0, len(op.Parameters))
	for _, param := range op.Parameters {
		typ, err := DataType(param.DataType, opts.ModelsNamespace)
		if err != nil {
			return "", err
		}
		params = append(params, param.Name+": "+typ)
	}
	ret, err := ReturnType(op, opts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s): %s", name, strings.Join(params, ", "), ret), nil
}
