package service

import "strings"

// textValue normalizes a user-supplied field: absent or null becomes the
// empty string, anything else is trimmed. Every field passes through here
// before validation or storage, so the rest of the code never distinguishes
// "missing" from "blank".
func textValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
