package version

// Response represents the build version response
type Response struct {
	Version string `json:"version" example:"1.0.0"`
}
