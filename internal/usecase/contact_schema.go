package usecase

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Submission validation lives in the schema, not in hand-written checks.
const contactMessageSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "email", "subject", "message"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"email": {"type": "string", "format": "email"},
		"subject": {"type": "string", "minLength": 1},
		"message": {"type": "string", "minLength": 1},
		"availability_preference": {"type": ["string", "null"]}
	}
}`

var contactSchema = gojsonschema.NewStringLoader(contactMessageSchema)

func validateSubmission(input SubmitInput) error {
	res, err := gojsonschema.Validate(contactSchema, gojsonschema.NewGoLoader(input.document()))
	if err != nil {
		return &ValidationError{Detail: err.Error()}
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return &ValidationError{Detail: strings.Join(msgs, "; ")}
}
