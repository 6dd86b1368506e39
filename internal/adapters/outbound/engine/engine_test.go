package engine_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beltic/credcheck/internal/adapters/outbound/engine"
	"github.com/beltic/credcheck/internal/domain"
)

func compile(t *testing.T, e *engine.Engine, location, schema string) domain.Schema {
	t.Helper()
	doc, err := e.Decode([]byte(schema))
	require.NoError(t, err)
	sch, err := e.Compile(location, doc)
	require.NoError(t, err)
	return sch
}

func validate(t *testing.T, e *engine.Engine, sch domain.Schema, document string) []domain.Violation {
	t.Helper()
	doc, err := e.Decode([]byte(document))
	require.NoError(t, err)
	return sch.Validate(doc)
}

func TestEngine_RequiredProperty(t *testing.T) {
	e := engine.New(afero.NewMemMapFs())
	sch := compile(t, e, "schema.json", `{"type":"object","required":["id"]}`)

	assert.Empty(t, validate(t, e, sch, `{"id":1}`))

	vs := validate(t, e, sch, `{"name":"x"}`)
	require.Len(t, vs, 1)
	assert.Equal(t, "(root)", vs[0].Path)
	assert.Contains(t, vs[0].Message, "missing property")
	assert.Contains(t, vs[0].Message, "id")
	assert.Equal(t, "required", vs[0].Keyword)
}

func TestEngine_NestedPath(t *testing.T) {
	e := engine.New(afero.NewMemMapFs())
	sch := compile(t, e, "schema.json", `{
		"type": "object",
		"properties": {
			"tools": {
				"type": "array",
				"items": {"type": "object", "properties": {"name": {"type": "string"}}}
			}
		}
	}`)

	vs := validate(t, e, sch, `{"tools":[{"name":"ok"},{"name":7}]}`)
	require.Len(t, vs, 1)
	assert.Equal(t, "tools/1/name", vs[0].Path)
	assert.Equal(t, "type", vs[0].Keyword)
}

func TestEngine_CollectsEveryViolation(t *testing.T) {
	e := engine.New(afero.NewMemMapFs())
	sch := compile(t, e, "schema.json", `{
		"type": "object",
		"required": ["a", "b"],
		"properties": {
			"c": {"type": "string"},
			"d": {"type": "integer"},
			"e": {"type": "boolean"}
		}
	}`)

	vs := validate(t, e, sch, `{"c":1,"d":"x","e":"y"}`)
	assert.Len(t, vs, 4)
}

func TestEngine_AssertsFormats(t *testing.T) {
	e := engine.New(afero.NewMemMapFs())
	sch := compile(t, e, "schema.json", `{
		"type": "object",
		"properties": {"issued": {"type": "string", "format": "date-time"}}
	}`)

	assert.Empty(t, validate(t, e, sch, `{"issued":"2025-01-15T10:00:00Z"}`))

	vs := validate(t, e, sch, `{"issued":"last tuesday"}`)
	require.Len(t, vs, 1)
	assert.Equal(t, "issued", vs[0].Path)
	assert.Equal(t, "format", vs[0].Keyword)
}

func TestEngine_ResolvesRelativeRefsThroughFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "schemas/common/v1/did.schema.json",
		[]byte(`{"type":"string","pattern":"^did:"}`), 0o644))

	e := engine.New(fs)
	sch := compile(t, e, "schemas/agent/v1/agent.schema.json", `{
		"type": "object",
		"properties": {"issuer": {"$ref": "../../common/v1/did.schema.json"}}
	}`)

	assert.Empty(t, validate(t, e, sch, `{"issuer":"did:web:beltic.dev"}`))
	assert.Len(t, validate(t, e, sch, `{"issuer":"beltic"}`), 1)
}

func TestEngine_CompileRejectsInvalidSchema(t *testing.T) {
	e := engine.New(afero.NewMemMapFs())
	doc, err := e.Decode([]byte(`{"type": 5}`))
	require.NoError(t, err)

	_, err = e.Compile("schema.json", doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling schema")
}

func TestEngine_DecodeRejectsMalformedJSON(t *testing.T) {
	e := engine.New(afero.NewMemMapFs())

	_, err := e.Decode([]byte(`{"id": `))
	assert.Error(t, err)

	_, err = e.Decode([]byte(`{"id": 1} {"id": 2}`))
	assert.Error(t, err, "trailing data should be rejected")
}
