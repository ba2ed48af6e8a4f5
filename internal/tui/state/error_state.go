package state

// ErrorState holds the full-board error message shown when the
// initial load fails. Empty string means no error.
type ErrorState struct {
	message string
}

// NewErrorState creates an ErrorState with no error.
func NewErrorState() *ErrorState {
	return &ErrorState{}
}

// Set sets the error message.
func (s *ErrorState) Set(msg string) {
	s.message = msg
}

// Clear removes any current error message.
func (s *ErrorState) Clear() {
	s.message = ""
}

// HasError reports whether an error message is set.
func (s *ErrorState) HasError() bool {
	return s.message != ""
}

// Get returns the current error message.
func (s *ErrorState) Get() string {
	return s.message
}
