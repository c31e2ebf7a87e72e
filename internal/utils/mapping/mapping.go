package mapping

// optionalString maps an empty string to nil for nullable columns.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// stringOrEmpty maps a nullable column back to the domain's empty default.
func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
