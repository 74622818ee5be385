package api

// Meta carries pagination metadata for collection responses.
type Meta struct {
	Count      int64  `json:"count"`
	PerPage    int    `json:"per_page"`
	TotalPage  int64  `json:"total_page"`
	CurrentURL string `json:"current_url,omitempty"`
}

// Response is the envelope wrapping every JSON body. Exactly one of Data or
// Error is set; Meta accompanies paginated collections.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Data wraps a successful payload.
func Data(data interface{}) Response {
	return Response{Data: data}
}

// DataWithMessage wraps a successful payload with a human-readable message.
func DataWithMessage(data interface{}, message string) Response {
	return Response{Data: data, Message: message}
}

// Paginated wraps a page of results with its metadata.
func Paginated(data interface{}, meta Meta) Response {
	return Response{Data: data, Meta: &meta}
}

// Error wraps an error message.
func Error(message string) Response {
	return Response{Error: message}
}
