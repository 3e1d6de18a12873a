package basketapi

import (
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// decodeAny decodes a payload and strips a {"data": ...} envelope.
func decodeAny(raw []byte) (any, error) {
	var out any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if obj, ok := out.(map[string]any); ok {
		if data, ok := obj["data"]; ok && data != nil {
			return data, nil
		}
	}
	return out, nil
}

func decodeObject(raw []byte) (map[string]any, error) {
	out, err := decodeAny(raw)
	if err != nil {
		return nil, err
	}
	obj, _ := out.(map[string]any)
	return obj, nil
}

// decodeList accepts a bare array or an object holding one under a common key.
func decodeList(raw []byte, keys ...string) ([]map[string]any, error) {
	out, err := decodeAny(raw)
	if err != nil {
		return nil, err
	}
	return asObjects(out, keys...), nil
}

func asObjects(v any, keys ...string) []map[string]any {
	switch typed := v.(type) {
	case []any:
		items := make([]map[string]any, 0, len(typed))
		for _, item := range typed {
			if obj, ok := item.(map[string]any); ok {
				items = append(items, obj)
			}
		}
		return items
	case map[string]any:
		for _, key := range keys {
			if nested, ok := typed[key]; ok {
				return asObjects(nested)
			}
		}
	}
	return nil
}

func nestedMap(src map[string]any, path ...string) map[string]any {
	cur := src
	for _, key := range path {
		if cur == nil {
			return nil
		}
		next, ok := cur[key].(map[string]any)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	switch typed := src[key].(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int:
		return strconv.Itoa(typed)
	default:
		return ""
	}
}

func getStringAny(src map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := getString(src, key); v != "" {
			return v
		}
	}
	return ""
}

func getInt64(src map[string]any, key string) int64 {
	if src == nil {
		return 0
	}
	return int64(math.Round(asFloat64(src[key])))
}

func getInt64Any(src map[string]any, keys ...string) int64 {
	for _, key := range keys {
		if v := getInt64(src, key); v != 0 {
			return v
		}
	}
	return 0
}

func getIntAny(src map[string]any, keys ...string) int {
	return int(getInt64Any(src, keys...))
}

// getFloatAny returns the first present numeric value and whether one was found.
func getFloatAny(src map[string]any, keys ...string) (float64, bool) {
	if src == nil {
		return 0, false
	}
	for _, key := range keys {
		raw, ok := src[key]
		if !ok || raw == nil {
			continue
		}
		if s, isString := raw.(string); isString {
			if _, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(s, ",", ".", 1)), 64); err != nil {
				continue
			}
		}
		return asFloat64(raw), true
	}
	return 0, false
}

func asFloat64(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case float32:
		return float64(typed)
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(typed, ",", ".", 1)), 64)
		if err != nil {
			return 0
		}
		return parsed
	case map[string]any:
		for _, key := range []string{"total", "value", "all"} {
			if v, ok := typed[key]; ok {
				return asFloat64(v)
			}
		}
		return 0
	default:
		return 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
