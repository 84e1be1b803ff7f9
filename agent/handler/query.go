package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

const maxQueryBody = 64 << 10

// queryRequest uses pointers so an absent field can be told apart from an
// empty one. Empty strings are accepted.
type queryRequest struct {
	CustomerID *string `json:"customer_id"`
	Message    *string `json:"message"`
	Category   *string `json:"category"`
	Priority   *string `json:"priority"`
}

func (req queryRequest) missing() string {
	switch {
	case req.CustomerID == nil:
		return "customer_id"
	case req.Message == nil:
		return "message"
	case req.Category == nil:
		return "category"
	case req.Priority == nil:
		return "priority"
	default:
		return ""
	}
}

// decodeQuery reads and validates the body, writing a 400 on failure.
func (h *Handler) decodeQuery(w http.ResponseWriter, r *http.Request) (contractx.Query, bool) {
	var req queryRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxQueryBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return contractx.Query{}, false
	}
	if field := req.missing(); field != "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Missing required field: %s", field))
		return contractx.Query{}, false
	}

	return contractx.Query{
		ID:         h.newQueryID(),
		CustomerID: *req.CustomerID,
		Message:    *req.Message,
		Category:   contractx.Category(*req.Category),
		Priority:   contractx.Priority(*req.Priority),
		CreatedAt:  h.now().UTC(),
	}, true
}
