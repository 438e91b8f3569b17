package magic

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/dcell/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ParseOverrides decodes the --dub_config value, trying JSON first and YAML second.
// YAML flow mappings accept the Python literal spelling ({'libs': ['fftw3']}).
// The decoded document must be a mapping.
func ParseOverrides(text string) (map[string]any, error) {
	var fromJSON any
	jsonErr := json.Unmarshal([]byte(text), &fromJSON)
	if jsonErr == nil {
		return asMapping(fromJSON, text)
	}

	var fromYAML any
	yamlErr := yaml.Unmarshal([]byte(text), &fromYAML)
	if yamlErr == nil {
		return asMapping(fromYAML, text)
	}

	err := zerr.Wrap(domain.ErrInvalidOverrides, fmt.Sprintf("json: %v; yaml: %v", jsonErr, yamlErr))
	err = zerr.With(err, "json_error", jsonErr.Error())
	err = zerr.With(err, "yaml_error", yamlErr.Error())
	return nil, zerr.With(err, "text", text)
}

func asMapping(v any, text string) (map[string]any, error) {
	m, ok := normalize(v).(map[string]any)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidOverrides, "overrides must be a mapping"), "text", text)
	}
	return m, nil
}

// normalize turns YAML's map[any]any nodes, produced for non-string keys, into map[string]any.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	default:
		return v
	}
}
