package model

type GenerateRequestBody struct {
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
}

type GeneratedScale struct {
	Name       string   `json:"name"`
	Difficulty string   `json:"difficulty"`
	Root       string   `json:"root"`
	Notes      []string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
