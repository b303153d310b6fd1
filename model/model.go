package model

// Normalized API description consumed by the language helpers. All values are
// read-only views supplied by the calling generator; nothing in this module
// creates or mutates them.

// Primitive is one of the scalar kinds a Property may declare.
type Primitive string

const (
	Integer Primitive = "integer"
	Number  Primitive = "number"
	String  Primitive = "string"
	Boolean Primitive = "boolean"
	File    Primitive = "file"
	Object  Primitive = "object"
)

// Format refines a string primitive. It is meaningless for any other kind.
type Format string

const (
	DateTime Format = "date-time"
	UUID     Format = "uuid"
	Byte     Format = "byte"
)

// Profile describes the generation context: which generator is running and,
// optionally, in which mode.
type Profile struct {
	Generator string `json:"generator"`
	Mode      string `json:"mode,omitempty"`
}

// Definition is the top-level API description. Only its metadata is used here.
type Definition struct {
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Metadata carries informational fields rendered into generated file headers.
// Every field is optional; empty means absent.
type Metadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	BaseURL     string `json:"baseUrl,omitempty"`
}

// Property describes a single value's type. Exactly one of Primitive, Complex
// or Enum should be set; a Property setting none of them fails resolution.
// SubType refines string primitives only.
type Property struct {
	Primitive Primitive `json:"primitive,omitempty"`
	SubType   Format    `json:"subType,omitempty"`
	Complex   string    `json:"complex,omitempty"`
	Enum      string    `json:"enum,omitempty"`
	IsArray   bool      `json:"isArray,omitempty"`
}

// Operation describes one API operation. Parameters keep their declared order,
// which becomes positional argument order in generated signatures. Responses
// is an ordered association list keyed by status-code string; the order
// decides which successful response wins return-type resolution.
type Operation struct {
	Description  string      `json:"description,omitempty"`
	Description2 string      `json:"description2,omitempty"`
	Parameters   []Parameter `json:"parameters,omitempty"`
	Responses    []Response  `json:"responses,omitempty"`
}

// Parameter is a named operation input.
type Parameter struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	DataType    Property `json:"dataType"`
}

// Response associates a status-code key ("200", "404", also "default") with an
// optional payload type. A nil DataType means the response declares no payload.
type Response struct {
	Status   string    `json:"status"`
	DataType *Property `json:"dataType,omitempty"`
}
