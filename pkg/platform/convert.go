package platform

// toUint64 converts the numeric types a codec may produce to uint64.
// Negative and fractional values are rejected.
func toUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case int:
		return uint64(n), n >= 0
	case int8:
		return uint64(n), n >= 0
	case int16:
		return uint64(n), n >= 0
	case int32:
		return uint64(n), n >= 0
	case int64:
		return uint64(n), n >= 0
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case float32:
		return uint64(n), n >= 0 && float32(uint64(n)) == n
	case float64:
		return uint64(n), n >= 0 && float64(uint64(n)) == n
	default:
		return 0, false
	}
}

// parseString extracts a string value.
func parseString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// parseBool extracts a bool value.
func parseBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// parseMap extracts a string-keyed map. Some codecs decode maps with
// interface keys.
func parseMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}
