package typescript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/angular-template/swagen-typescript-language/model"
)

// Fixture mirrors of the model types, carrying yaml tags so cases stay
// readable in testdata/signatures.yaml.

type fixtureProperty struct {
	Primitive string `yaml:"primitive"`
	SubType   string `yaml:"subType"`
	Complex   string `yaml:"complex"`
	Enum      string `yaml:"enum"`
	IsArray   bool   `yaml:"isArray"`
}

type fixtureParameter struct {
	Name     string          `yaml:"name"`
	DataType fixtureProperty `yaml:"dataType"`
}

type fixtureResponse struct {
	Status   string           `yaml:"status"`
	DataType *fixtureProperty `yaml:"dataType"`
}

type fixtureOperation struct {
	Parameters []fixtureParameter `yaml:"parameters"`
	Responses  []fixtureResponse  `yaml:"responses"`
}

type fixtureOptions struct {
	ModelsNamespace string `yaml:"modelsNamespace"`
	VoidType        string `yaml:"voidType"`
}

type signatureFixture struct {
	Name      string           `yaml:"name"`
	Options   fixtureOptions   `yaml:"options"`
	Operation fixtureOperation `yaml:"operation"`
	Want      string           `yaml:"want"`
}

func (p fixtureProperty) toModel() model.Property {
	return model.Property{
		Primitive: model.Primitive(p.Primitive),
		SubType:   model.Format(p.SubType),
		Complex:   p.Complex,
		Enum:      p.Enum,
		IsArray:   p.IsArray,
	}
}

func (o fixtureOperation) toModel() model.Operation {
	op := model.Operation{}
	for _, p := range o.Parameters {
		op.Parameters = append(op.Parameters, model.Parameter{
			Name:     p.Name,
			DataType: p.DataType.toModel(),
		})
	}
	for _, r := range o.Responses {
		resp := model.Response{Status: r.Status}
		if r.DataType != nil {
			dt := r.DataType.toModel()
			resp.DataType = &dt
		}
		op.Responses = append(op.Responses, resp)
	}
	return op
}

func TestMethodSignature_Fixtures(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile(filepath.Join("testdata", "signatures.yaml"))
	require.NoError(t, err)

	var fixtures []signatureFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixtures))
	require.NotEmpty(t, fixtures)

	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			t.Parallel()
			got, err := MethodSignature(fx.Name, fx.Operation.toModel(), Options{
				ModelsNamespace: fx.Options.ModelsNamespace,
				VoidType:        fx.Options.VoidType,
			})
			require.NoError(t, err)
			assert.Equal(t, fx.Want, got)
		})
	}
}
