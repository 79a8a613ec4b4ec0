package model

import "time"

// AuditEntry records a console-initiated action. This is the console's own
// trail, the booking API keeps its authoritative state elsewhere.
type AuditEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Action    string    `json:"action" gorm:"index"`
	EventID   string    `json:"event_id"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
