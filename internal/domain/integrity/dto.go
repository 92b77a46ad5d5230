package integrity

type Match struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// DuplicateCheckResponse is advisory: Matches are participants whose history
// shares the device ID, Unchecked are those whose history could not be read.
type DuplicateCheckResponse struct {
	AttendanceID string   `json:"attendance_id"`
	UserID       string   `json:"user_id"`
	AndroidID    *string  `json:"android_id"`
	Participants []string `json:"participants"`
	Matches      []Match  `json:"matches"`
	Unchecked    []Match  `json:"unchecked"`
	Checked      int      `json:"checked"`
}
