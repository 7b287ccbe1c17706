package httpx

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// stackExposure gates whether error payloads carry the stack field. It is
// set once at startup from the environment config; production keeps it off.
var stackExposure atomic.Bool

// SetStackExposure toggles the stack field on error payloads.
func SetStackExposure(enabled bool) {
	stackExposure.Store(enabled)
}

func exposeStacks() bool {
	return stackExposure.Load()
}

// Pagination is the offset paging block attached to list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type listEnvelope struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// WriteData writes {"success": true, "data": ...} with the given status.
func WriteData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dataEnvelope{Success: true, Data: data})
}

// WriteList writes a 200 list envelope with its pagination block. Empty
// result sets are still successful responses.
func WriteList(w http.ResponseWriter, data any, pagination Pagination) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(listEnvelope{Success: true, Data: data, Pagination: pagination})
}
