package health

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status    string `json:"status" example:"OK" enum:"OK,DEGRADED" doc:"OK, or DEGRADED while the current cache is not installed"`
	Cache     string `json:"cache" example:"memo-share-app-v1" doc:"Current cache version"`
	Installed bool   `json:"installed" doc:"Whether the current cache is installed"`
}
