package dto

// ScheduleTimesResp represents the response body for the
// GET /schedule/:schedule_id/times endpoint.
type ScheduleTimesResp struct {
	DepartureTime string `json:"departure_time"`
	WakeUpTime    string `json:"wake_up_time"`
}

// ScheduleItem represents one full schedule row in a user's schedule list.
type ScheduleItem struct {
	ScheduleID    uint   `json:"schedule_id"`
	UserID        uint   `json:"user_id"`
	PlanID        uint   `json:"plan_id"`
	Date          string `json:"date"`
	DepartureTime string `json:"departure_time"`
	WakeUpTime    string `json:"wake_up_time"`
}
