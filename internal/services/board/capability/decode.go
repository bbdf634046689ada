package capability

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNotObject reports a payload whose top level is not a JSON object.
var ErrNotObject = errors.New("capability set must be a JSON object")

// Decode parses a CapabilitySet payload, keeping the object key order.
//
// Missing or non-array list fields decode as empty lists and a missing
// capacity decodes as 0.
func Decode(payload []byte) (Set, error) {
	if !gjson.ValidBytes(payload) {
		return Set{}, fmt.Errorf("decode capability set: invalid json")
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return Set{}, ErrNotObject
	}

	var (
		set     Set
		itemErr error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		details, err := decodeDetails(value)
		if err != nil {
			itemErr = fmt.Errorf("decode capability %q: %w", key.String(), err)
			return false
		}
		set.put(Entry{Name: key.String(), Details: details})
		return true
	})
	if itemErr != nil {
		return Set{}, itemErr
	}
	return set, nil
}

func decodeDetails(value gjson.Result) (Details, error) {
	if !value.IsObject() {
		return Details{}, ErrNotObject
	}
	details := Details{
		Description:       value.Get("description").String(),
		PracticeArea:      value.Get("practice_area").String(),
		SkillLevels:       stringList(value.Get("skill_levels")),
		Certifications:    stringList(value.Get("certifications")),
		IndustryVerticals: stringList(value.Get("industry_verticals")),
		Consultants:       stringList(value.Get("consultants")),
	}
	if capacity := value.Get("capacity"); capacity.Type == gjson.Number {
		details.Capacity = capacity.Float()
	}
	return details, nil
}

func stringList(value gjson.Result) []string {
	if !value.IsArray() {
		return []string{}
	}
	items := value.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == gjson.Null {
			out = append(out, "")
			continue
		}
		out = append(out, item.String())
	}
	return out
}

// MarshalJSON encodes the set as an object in received key order.
func (s Set) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, entry := range s.entries {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Details)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	return append(buf, '}'), nil
}
