package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// TargetSeller addresses the link to the store's own number. Any other
// target produces a generic share link with no recipient.
const TargetSeller = "seller"

// LinkBuilder builds wa.me deep links carrying a prefilled message.
type LinkBuilder struct {
	BaseURL      string // e.g. https://wa.me
	SellerNumber string // international format without '+', e.g. 6285155178234
}

// Link returns the deep link for the given message text and target.
func (b LinkBuilder) Link(text, target string) string {
	base := strings.TrimRight(b.BaseURL, "/")
	if target == TargetSeller && b.SellerNumber != "" {
		return fmt.Sprintf("%s/%s?text=%s", base, b.SellerNumber, Encode(text))
	}
	return fmt.Sprintf("%s/?text=%s", base, Encode(text))
}

// Encode percent-encodes message text for the wa.me text parameter.
// Spaces must be %20 rather than '+': WhatsApp renders '+' literally.
func Encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
