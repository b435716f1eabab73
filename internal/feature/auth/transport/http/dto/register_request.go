// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// It uses Gin's binding tags for validation.
type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResp represents the response body for a successful registration.
type RegisterResp struct {
	UserName string `json:"user_name"`
	Status   string `json:"status"`
}
