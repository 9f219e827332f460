// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"bytes"
	"encoding/json"

	"sigs.k8s.io/yaml"
)

// ParseList decodes a YAML or JSON field list. Two shapes are accepted:
//
//	enum: VkDynamicState
//	fields:
//	  - name: VK_DYNAMIC_STATE_VIEWPORT
//	    value: 0
//
// or a bare list of fields, which is taken to describe VkDynamicState.
func ParseList(data []byte) (*Enum, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, newError(ErrInvalidDocument, err, "decode field list")
	}
	raw = bytes.TrimSpace(raw)

	e := &Enum{}
	switch {
	case bytes.HasPrefix(raw, []byte("[")):
		err = strictJSON(raw, &e.Fields)
	case bytes.HasPrefix(raw, []byte("{")):
		err = strictJSON(raw, e)
	default:
		return nil, newError(ErrInvalidDocument, nil, "field list must be a list or a mapping")
	}
	if err != nil {
		return nil, newError(ErrInvalidDocument, err, "decode field list")
	}

	if e.Name == "" {
		e.Name = DynamicState
	}
	for i, f := range e.Fields {
		if f.Name == "" {
			return nil, newError(ErrInvalidDocument, nil, "field %d has no name", i)
		}
	}
	return e, nil
}

func strictJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
