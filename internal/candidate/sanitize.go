package candidate

import "strings"

// Sanitized returns a copy of the record with identity fields masked, safe
// for logs and console summaries.
func (r *Record) Sanitized() *Record {
	masked := *r
	masked.Email = MaskEmail(r.Email)
	masked.Phone = MaskPhone(r.Phone)
	return &masked
}

// MaskEmail hides most of the local part of an email address.
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) > 2 {
		local = local[:2]
	}
	return local + "***@" + parts[1]
}

// MaskPhone keeps only the last four digits of a phone number.
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}
	if len(phone) < 4 {
		return "***"
	}
	return "***-***-" + phone[len(phone)-4:]
}
