package deploy

// Response represents the deploy trigger response
type Response struct {
	Status string `json:"status" example:"success"`
}
