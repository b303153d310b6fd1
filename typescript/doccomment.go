package typescript

import (
	"fmt"

	"github.com/angular-template/swagen-typescript-language/model"
)

// OperationDocComments renders the JSDoc block for one operation: a body line
// per description, then one @param line per parameter that carries a
// description, in declaration order. Parameter types resolve without a
// namespace; doc comments never qualify type names.
//
// The /** and */ wrapper is added only when at least one body line exists; an
// operation with no description content yields a nil slice, not an empty block.
func OperationDocComments(op model.Operation) ([]string, error) {
	var body []string
	if op.Description != "" {
		body = append(body, " * "+op.Description)
	}
	if op.Description2 != "" {
		body = append(body, " * "+op.Description2)
	}
	for _, param := range op.Parameters {
		if param.Description == "" {
			continue
		}
		typ, err := DataType(param.DataType, "")
		if err != nil {
			return nil, err
		}
		body = append(body, fmt.Sprintf(" * @param {%s} %s - %s", typ, param.Name, param.Description))
	}
	if len(body) == 0 {
		return nil, nil
	}
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, "/**")
	lines = append(lines, body...)
	lines = append(lines, " */")
	return lines, nil
}
