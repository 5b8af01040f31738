package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	app "intake/internal/application/models"
	"intake/internal/application/paths"
	dErrors "intake/pkg/domain-errors"
)

// MergeRequest carries whole sections to replace. Keys absent from the body
// are left untouched.
type MergeRequest struct {
	app.Section
}

// UnmarshalJSON decodes currentAddress through the field lenses so its
// numeric fields coerce the same way a single-field update does.
func (r *MergeRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	address, ok := raw["currentAddress"]
	delete(raw, "currentAddress")

	rest, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(rest, &r.Section); err != nil {
		return err
	}
	if !ok || bytes.Equal(bytes.TrimSpace(address), []byte("null")) {
		return nil
	}
	current, err := decodeCurrentAddress(address)
	if err != nil {
		return err
	}
	r.Section.CurrentAddress = current
	return nil
}

func decodeCurrentAddress(raw json.RawMessage) (*app.CurrentAddress, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("currentAddress: %w", err)
	}
	var record app.ApplicationRecord
	for name, value := range fields {
		lens, err := paths.Lookup("currentAddress." + name)
		if err != nil {
			continue
		}
		if err := lens.Set(&record, value); err != nil {
			return nil, fmt.Errorf("currentAddress.%s: %w", name, err)
		}
	}
	return &record.CurrentAddress, nil
}

func (r *MergeRequest) Normalize() {}

func (r *MergeRequest) Validate() error {
	if r.Section.IsEmpty() {
		return dErrors.New(dErrors.CodeBadRequest, "at least one section is required")
	}
	return nil
}

// UpdateFieldRequest sets one leaf of the record.
type UpdateFieldRequest struct {
	Value json.RawMessage `json:"value"`
}

func (r *UpdateFieldRequest) Normalize() {}

func (r *UpdateFieldRequest) Validate() error {
	if len(r.Value) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "value is required")
	}
	return nil
}

// ListFieldRequest sets one field of a child or previous address.
type ListFieldRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

func (r *ListFieldRequest) Normalize() {
	r.Field = strings.TrimSpace(r.Field)
}

func (r *ListFieldRequest) Validate() error {
	if r.Field == "" {
		return dErrors.New(dErrors.CodeBadRequest, "field is required")
	}
	if len(r.Value) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "value is required")
	}
	return nil
}

// decodeValue turns a raw JSON value into the loosely typed form the field
// lenses coerce from. Numbers stay json.Number so integers survive intact.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid value")
	}
	return v, nil
}
