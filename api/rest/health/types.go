package health

// Response represents the health check response
type Response struct {
	Status string `json:"status" example:"ok"`
}
