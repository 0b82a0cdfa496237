package model

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

func orFalse(v *bool) bool {
	return v != nil && *v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
