package patch

import "strings"

// OptionalText applies a partial-update string: nil keeps current, a blank value clears it.
func OptionalText(in *string, current *string) *string {
	if in == nil {
		return current
	}
	v := strings.TrimSpace(*in)
	if v == "" {
		return nil
	}
	return &v
}
