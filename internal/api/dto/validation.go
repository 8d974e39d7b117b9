package dto

// ValidationIssue describes one rejected request input.
type ValidationIssue struct {
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Type  string   `json:"type"`
	Input string   `json:"input,omitempty"`
}

type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}
