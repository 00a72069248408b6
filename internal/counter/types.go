package counter

// DispatchRequest is the JSON body for POST /counter/dispatch.
type DispatchRequest struct {
	Count   int      `json:"count"`
	Actions []string `json:"actions"`
}

// DispatchResponse is the JSON response for POST /counter/dispatch.
type DispatchResponse struct {
	Count   int `json:"count"`
	Applied int `json:"applied"`
}
