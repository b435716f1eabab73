// Package dto defines data transfer objects for the plan HTTP API.
package dto

// StepItem represents one step in a plan creation request.
// process_order is assigned server-side from the input position.
type StepItem struct {
	StepName string `json:"step_name" binding:"required"`
	StepTime int    `json:"step_time"`
}

// CreatePlanReq represents the request body for the POST /plans endpoint.
type CreatePlanReq struct {
	UserID   uint       `json:"user_id" binding:"required"`
	PlanName string     `json:"plan_name" binding:"required"`
	Steps    []StepItem `json:"steps" binding:"dive"`
}

// CreatePlanResp represents the response body for a successful plan creation.
type CreatePlanResp struct {
	Message string `json:"message"`
	PlanID  uint   `json:"plan_id"`
}
