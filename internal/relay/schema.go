package relay

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed email-payload.schema.json
var payloadSchemaJSON []byte

const payloadSchemaURL = "https://rosterkeeper.local/schemas/email-payload.json"

// PayloadValidator checks request bodies against the email payload schema.
type PayloadValidator struct {
	schema *jsonschema.Schema
}

func NewPayloadValidator() (*PayloadValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(payloadSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("schema parse error: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(payloadSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("schema load error: %w", err)
	}

	sch, err := c.Compile(payloadSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("schema compile error: %w", err)
	}
	return &PayloadValidator{schema: sch}, nil
}

// Decode validates body and returns the payload it carries. Errors wrap
// common.ErrorValidation and fit on one line.
func (v *PayloadValidator) Decode(body []byte) (models.EmailPayload, error) {
	var p models.EmailPayload

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return p, fmt.Errorf("%w: invalid JSON body", common.ErrorValidation)
	}
	if err := v.schema.Validate(inst); err != nil {
		return p, fmt.Errorf("%w: %s", common.ErrorValidation, oneLine(err.Error()))
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return p, fmt.Errorf("%w: %s", common.ErrorValidation, err.Error())
	}
	return p, nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
