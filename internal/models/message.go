// internal/models/message.go
package models

// MessageType classifies an outbound message by the flow that produced it.
type MessageType string

const (
	MessageTypeAppointment MessageType = "Appointment"
	MessageTypeInquiry     MessageType = "Inquiry"
	MessageTypeNewsletter  MessageType = "Newsletter"
)

// ValidMessageType reports whether t is one of the known message types.
func ValidMessageType(t MessageType) bool {
	switch t {
	case MessageTypeAppointment, MessageTypeInquiry, MessageTypeNewsletter:
		return true
	}
	return false
}

// Message is one entry in the outbound message log. Records are append-only
// and never mutated after creation.
type Message struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Subject   string      `json:"subject"`
	Content   string      `json:"content"`
	To        string      `json:"to"`
	Timestamp string      `json:"timestamp"` // ISO 8601 / RFC 3339, UTC
}
