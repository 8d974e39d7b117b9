package dto

type OutputsResponse struct {
	Count int      `json:"count"`
	Items []string `json:"items"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
