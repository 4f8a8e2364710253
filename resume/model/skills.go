package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// SkillGroup is one labeled list of skills.
type SkillGroup struct {
	Label string
	Items []string
}

// SkillList preserves the insertion order of skill categories. The JSON wire
// shape is a plain object (label -> items), but Go maps do not keep key order,
// so (un)marshalling walks the object token stream directly.
type SkillList []SkillGroup

// UnmarshalJSON decodes a JSON object into ordered groups.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	tok, err := decoder.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("skills: expected JSON object, got %v", tok)
	}

	groups := SkillList{}
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return err
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected object key, got %v", keyTok)
		}
		var items []string
		if err := decoder.Decode(&items); err != nil {
			return fmt.Errorf("skills[%q]: %w", label, err)
		}
		groups = append(groups, SkillGroup{Label: label, Items: items})
	}

	if _, err := decoder.Token(); err != nil && err != io.EOF {
		return err
	}

	*s = groups
	return nil
}

// MarshalJSON encodes the groups back into an object, keeping their order.
func (s SkillList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(group.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		items := group.Items
		if items == nil {
			items = []string{}
		}
		encoded, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
