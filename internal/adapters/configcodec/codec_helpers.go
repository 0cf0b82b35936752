package configcodec

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
)

// flatten checks that raw is a mapping whose keys are non-empty strings and
// whose values are strings. JSON and YAML are held to the same rule, so a
// number or a nested list is rejected in both instead of being coerced.
func flatten(raw interface{}) (map[string]string, error) {
	var generic map[string]interface{}
	switch doc := raw.(type) {
	case map[string]interface{}:
		generic = doc
	case map[interface{}]interface{}:
		return nil, fmt.Errorf("alias names must be strings")
	case nil:
		return map[string]string{}, nil
	default:
		return nil, fmt.Errorf("top level must be a mapping of alias to command, got %s", describe(raw))
	}

	keys := make([]string, 0, len(generic))
	for key := range generic {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	aliases := make(map[string]string, len(generic))
	for _, key := range keys {
		if key == "" {
			return nil, fmt.Errorf("alias names must not be empty")
		}
		command, err := decodeCommand(generic[key])
		if err != nil {
			return nil, fmt.Errorf("alias %q: command must be a string, got %s", key, describe(generic[key]))
		}
		aliases[key] = command
	}
	return aliases, nil
}

// decodeCommand converts a decoded value to a command line. Input is not
// weakly typed, so numbers, booleans, lists and mappings are errors rather
// than being stringified.
func decodeCommand(value interface{}) (string, error) {
	if value == nil {
		return "", fmt.Errorf("command is null")
	}
	var command string
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &command,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(value); err != nil {
		return "", err
	}
	return command, nil
}

func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []interface{}:
		return "list"
	case map[string]interface{}, map[interface{}]interface{}:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// duplicateJSONKey reports the first top-level key of a JSON object that
// appears more than once. data must already be valid JSON.
func duplicateJSONKey(data []byte) (string, bool) {
	iter := jsoniter.ParseBytes(json, data)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return "", false
	}

	seen := make(map[string]struct{})
	var duplicate string
	iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		if _, ok := seen[key]; ok {
			duplicate = key
			return false
		}
		seen[key] = struct{}{}
		it.Skip()
		return true
	})
	return duplicate, duplicate != ""
}
