// internal/app/features/auditlog/types.go
package auditlog

import (
	"github.com/dalemusser/admitportal/internal/app/store/audit"
)

// listResponse is one page of audit events, newest first.
type listResponse struct {
	Events     []audit.Event `json:"events"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Total      int64         `json:"total"`
}

// validCategory reports whether c is empty or a known category.
func validCategory(c string) bool {
	switch c {
	case "", audit.CategoryAuth, audit.CategoryAdmin:
		return true
	}
	return false
}
