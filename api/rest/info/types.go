package info

// Response represents the application info response
type Response struct {
	AppName     string `json:"app_name" example:"Jenkins CI/CD App"`
	Environment string `json:"environment" example:"development"`
	Version     string `json:"version" example:"1.0.0"`
}

// values reported by the info endpoint
type Details struct {
	AppName     string
	Environment string
	Version     string
}
