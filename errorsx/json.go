package errorsx

import (
	"encoding/json"
)

// Response is the flat JSON representation of an Error for API endpoints.
//
// The wrapped source chain and the backtrace are intentionally excluded:
// both may contain internal implementation details (file paths, queries)
// that must not leak to external callers. Consumers needing the full chain
// should use the accessors directly.
type Response struct {
	// Message is the human-readable error message.
	Message string `json:"message"`

	// File and Line locate the call site where the error originated.
	File string `json:"file"`
	Line int    `json:"line"`

	// Context contains the ordered annotations attached while the error
	// propagated. Omitted from JSON if empty.
	Context []string `json:"context,omitempty"`

	// StatusCode is the advisory status code, if one was set.
	StatusCode *uint32 `json:"status_code,omitempty"`

	// Status is the advisory status string, if one was set.
	Status string `json:"status,omitempty"`
}

// ToResponse converts any error to a Response suitable for JSON
// serialization. Returns nil if err is nil.
//
// For *Error instances (anywhere in the chain), the structured fields are
// extracted. For other errors only the message is populated.
//
// Example:
//
//	func handleError(w http.ResponseWriter, err error) {
//	    resp := errorsx.ToResponse(err)
//	    if resp == nil {
//	        return
//	    }
//	    w.Header().Set("Content-Type", "application/json")
//	    json.NewEncoder(w).Encode(resp)
//	}
func ToResponse(err error) *Response {
	if err == nil {
		return nil
	}

	e, ok := From(err)
	if !ok {
		return &Response{Message: err.Error()}
	}

	resp := &Response{
		Message: e.Message(),
		File:    e.Location().File,
		Line:    e.Location().Line,
		Context: e.Context(),
	}
	if code, ok := e.StatusCode(); ok {
		resp.StatusCode = &code
	}
	if status, ok := e.Status(); ok {
		resp.Status = status
	}
	return resp
}

// MarshalJSON implements json.Marshaler so an *Error can be marshaled
// directly with json.Marshal without calling ToResponse explicitly.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(e))
}
