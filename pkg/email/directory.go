package email

import "strings"

// Directory is the static mapping from inquiry category to destination
// mailbox, built once from configuration. Read-only after construction.
type Directory map[string]string

const fallbackCategory = "professional"

// Resolve returns the destination mailbox for a category. Matching is
// case-insensitive and total: unknown or empty categories resolve to the
// professional entry. An empty return value means the resolved entry is
// not configured.
func (d Directory) Resolve(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if addr, ok := d[key]; ok && addr != "" {
		return addr
	}
	return d[fallbackCategory]
}
