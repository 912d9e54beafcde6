package domain

// FollowUpStatus tracks a visitor through the follow-up progression.
// Transitions are free-form; no ordering is enforced.
type FollowUpStatus string

const (
	FollowUpNeeded        FollowUpStatus = "Needs Follow-up"
	FollowUpContacted     FollowUpStatus = "Contacted"
	FollowUpScheduled     FollowUpStatus = "Follow-up Scheduled"
	FollowUpJoinedUnit    FollowUpStatus = "Joined a Unit"
	FollowUpNotInterested FollowUpStatus = "Not Interested"
	FollowUpNoResponse    FollowUpStatus = "No Response"
	FollowUpConverted     FollowUpStatus = "Converted to Member"
)

// FollowUpLog is one recorded follow-up action on a visitor.
type FollowUpLog struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Action      string `json:"action"`
	PerformedBy string `json:"performedBy"` // user ID
}

// FirstTimer is a visitor record tracked through the follow-up progression.
type FirstTimer struct {
	ID          string         `json:"id"`
	ChurchID    string         `json:"churchId"`
	FullName    string         `json:"fullName"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email,omitempty"`
	DateVisited string         `json:"dateVisited"`
	InvitedBy   string         `json:"invitedBy,omitempty"`
	AssignedTo  string         `json:"assignedTo,omitempty"` // worker user ID
	Status      FollowUpStatus `json:"status"`
	Notes       string         `json:"notes"`
	History     []FollowUpLog  `json:"history"`
}

// FirstTimerUpdate carries a partial update of a FirstTimer (shallow merge).
type FirstTimerUpdate struct {
	FullName   *string         `json:"fullName"`
	Phone      *string         `json:"phone"`
	Email      *string         `json:"email"`
	InvitedBy  *string         `json:"invitedBy"`
	AssignedTo *string         `json:"assignedTo"`
	Status     *FollowUpStatus `json:"status"`
	Notes      *string         `json:"notes"`
}
