package store

// StateKind names the step of a guided conversation a user is currently in.
// A user with no Session entry in the store is idle.
type StateKind string

const (
	StateAskingQuestion    StateKind = "ASKING_QUESTION"
	StateSupportEnterID    StateKind = "SUPPORT_ENTER_ID"
	StateSupportActive     StateKind = "SUPPORT_ACTIVE"
	StateChoosingService   StateKind = "CHOOSING_SERVICE"
	StateCollectingService StateKind = "COLLECTING_SERVICE"
	StateCheckingStatus    StateKind = "CHECKING_STATUS"
	StateSelectingLanguage StateKind = "SELECTING_LANGUAGE"
)

// Session is the active conversational state for one user. Payload fields
// are only meaningful for the kinds that carry them: ProjectId for
// StateSupportActive, ServiceType for StateCollectingService.
type Session struct {
	UserID      int64     `json:"user_id"`
	Kind        StateKind `json:"kind"`
	ProjectId   string    `json:"project_id,omitempty"`
	ServiceType string    `json:"service_type,omitempty"`
}
