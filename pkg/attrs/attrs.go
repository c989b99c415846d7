package attrs

// ExtractString extracts a string value from a key-value attribute slice.
// The slice should be formatted as [key1, value1, key2, value2, ...].
// Returns empty string if the key is not found or the value is not a string.
func ExtractString(attrs []any, key string) string {
	if v, ok := lookup(attrs, key).(string); ok {
		return v
	}
	return ""
}

// ExtractInt64 is ExtractString for int64 values. Returns 0 when the key is
// missing or holds another type.
func ExtractInt64(attrs []any, key string) int64 {
	if v, ok := lookup(attrs, key).(int64); ok {
		return v
	}
	return 0
}

func lookup(attrs []any, key string) any {
	for i := 0; i < len(attrs)-1; i += 2 {
		if k, ok := attrs[i].(string); ok && k == key {
			return attrs[i+1]
		}
	}
	return nil
}
