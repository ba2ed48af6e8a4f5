package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification is a single transient message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages the transient notices shown over the
// board, most importantly the batch rollback notice.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
	}
}

// Add appends a notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns the current notifications in insertion order.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny reports whether any notification is pending.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
