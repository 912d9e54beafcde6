package domain

// Snapshot is the whole application state: every entity collection plus the
// derived session views. The store replaces it wholesale on each mutation and
// persists it as a single JSON object.
type Snapshot struct {
	CurrentUser   *User   `json:"currentUser"`
	CurrentChurch *Church `json:"currentChurch"`

	Churches      []Church           `json:"churches"`
	Users         []User             `json:"users"`
	Units         []Unit             `json:"units"`
	FirstTimers   []FirstTimer       `json:"firstTimers"`
	Attendance    []AttendanceRecord `json:"attendance"`
	Tasks         []ActionPlan       `json:"tasks"`
	Announcements []Announcement     `json:"announcements"`
	Properties    []Property         `json:"properties"`
	Events        []ChurchEvent      `json:"events"`
	Transactions  []Transaction      `json:"transactions"`
	Budgets       []Budget           `json:"budgets"`
}
