package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/budget-engine/internal/logging"
)

// writePath is the part of the service the status check depends on.
type writePath interface {
	Stopped() bool
}

type Handler struct {
	Operator writePath
}

func NewHandler(op writePath) Handler {
	return Handler{Operator: op}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.Operator != nil && h.Operator.Stopped() {
		logData.AddData("operator", "stopped")
		w.WriteHeader(http.StatusServiceUnavailable)
		return nil
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
