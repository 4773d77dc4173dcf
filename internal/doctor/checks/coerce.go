package checks

// Config values come back as any; YAML unmarshals numbers as int or
// float64 depending on shape, so row limits tolerate both.
func asInt64(v any, def int64) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return def
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
