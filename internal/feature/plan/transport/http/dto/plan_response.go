package dto

// ProcessItem represents one persisted step in a plan detail response.
type ProcessItem struct {
	StepName     string `json:"step_name"`
	StepTime     int    `json:"step_time"`
	ProcessOrder int    `json:"process_order"`
}

// PlanDetailResp represents the response body for the GET /plans/:plan_id
// endpoint. Processes are ordered by process_order descending, the legacy
// read contract of this API.
type PlanDetailResp struct {
	PlanID    uint          `json:"plan_id"`
	PlanName  string        `json:"plan_name"`
	Processes []ProcessItem `json:"processes"`
}

// PlanListItem represents one plan in a user's plan list.
type PlanListItem struct {
	PlanID   uint   `json:"plan_id"`
	PlanName string `json:"plan_name"`
}
