package entity

// Preference holds the per-user durable dialogue state: the selected
// locale and the ordered buffer of free-text messages accumulated while
// a service request is being collected.
type Preference struct {
	UserId          int64
	Language        string
	PendingMessages []string
}
