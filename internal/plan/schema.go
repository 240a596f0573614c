package plan

import "github.com/xeipuuv/gojsonschema"

// envelopeSchema is the minimal contract extracted AI JSON must meet
// before repair is attempted: an object carrying a weeks array. Week
// contents are not constrained here; repair fills and coerces them.
const envelopeSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["weeks"],
	"properties": {
		"weeks": {"type": "array"}
	}
}`

// validEnvelope reports whether payload is valid JSON with a weeks
// array. Invalid JSON fails schema loading and reports false.
func validEnvelope(payload string) bool {
	schemaLoader := gojsonschema.NewStringLoader(envelopeSchema)
	documentLoader := gojsonschema.NewStringLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return false
	}
	return result.Valid()
}
