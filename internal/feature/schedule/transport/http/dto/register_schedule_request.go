// Package dto defines data transfer objects for the schedule HTTP API.
package dto

// RegisterScheduleReq represents the request body for the
// POST /register_schedule endpoint. wake_up_time is never accepted from
// the client; it is always derived server-side.
type RegisterScheduleReq struct {
	Date          string `json:"date" binding:"required"`
	DepartureTime string `json:"departure_time" binding:"required"`
	PlanID        uint   `json:"plan_id" binding:"required"`
	UserID        uint   `json:"user_id" binding:"required"`
}

// RegisterScheduleResp represents the response body for a successful
// schedule registration. The identifier is serialized as a string,
// matching the legacy wire contract.
type RegisterScheduleResp struct {
	ScheduleID string `json:"schedule_id"`
}
