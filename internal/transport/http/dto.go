package httptransport

type urlRequestBody struct {
	URL string `json:"url"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type analyzeResponse struct {
	Platform *string `json:"platform"`
	Valid    bool    `json:"valid"`
}

type downloadOption struct {
	Type    string `json:"type"`
	Quality string `json:"quality,omitempty"`
	URL     string `json:"url"`
	Note    string `json:"note,omitempty"`
}

type fetchResponse struct {
	Platform  string           `json:"platform"`
	Title     string           `json:"title,omitempty"`
	Thumbnail string           `json:"thumbnail,omitempty"`
	Downloads []downloadOption `json:"downloads"`
	Info      string           `json:"info,omitempty"`
}

type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error errorInfo `json:"error"`
}
