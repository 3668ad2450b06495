package home

// Response represents the landing endpoint response
type Response struct {
	Message string `json:"message" example:"Welcome to Jenkins CI/CD Automation Demo"`
	Status  string `json:"status" example:"running"`
	Version string `json:"version" example:"1.0.0"`
}
