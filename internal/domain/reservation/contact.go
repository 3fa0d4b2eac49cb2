package reservation

import "strings"

const whatsAppBaseURL = "https://wa.me/"

// WhatsAppLink builds a wa.me deep link from the digits of phone.
// Returns "" when the phone has no digits.
func WhatsAppLink(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return whatsAppBaseURL + b.String()
}

func (c Client) WhatsAppLink() string {
	return WhatsAppLink(c.phone)
}
