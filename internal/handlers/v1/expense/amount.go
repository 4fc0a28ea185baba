package expense

import (
	"bytes"
	"encoding/json"

	"github.com/danielgtaylor/huma/v2"
)

// Amount holds the raw request amount, sent either as a JSON string
// ("12.50") or a JSON number (12.5). Parsing happens in the handler so
// precision errors are reported against the field.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

func (Amount) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "Decimal amount with at most 2 fractional digits and 8 integer digits",
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeNumber},
		},
	}
}
