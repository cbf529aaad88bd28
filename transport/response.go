package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/utils/errors"
)

type responseEnvelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Fields  []string    `json:"fields,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError translates CustomErrors to their mapped status code and
// envelope; anything else is surfaced as an opaque internal error without
// leaking detail.
func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	if retryAfter := ce.RetryAfter(); retryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ce.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Fields:  ce.Fields(),
	})
}
