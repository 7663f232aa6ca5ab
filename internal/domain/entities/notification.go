package entities

// Notification is the transient toast payload emitted by session operations.
// The view layer displays it once and discards it; nothing tracks delivery.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
