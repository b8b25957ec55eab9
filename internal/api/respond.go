package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ammar944/AI-GOS-sub011/internal/auth"
	"github.com/ammar944/AI-GOS-sub011/internal/pipeline"
	"github.com/ammar944/AI-GOS-sub011/internal/store"
)

// maxRequestBodySize limits request bodies. Blueprint documents are the
// largest payloads.
const maxRequestBodySize = 2 << 20

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("api: write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeErr maps err onto a status. Internal details are logged, never sent.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var ve *pipeline.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case store.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, errBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, new(badRequestError)):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		zap.L().Error("api: request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

var errBadRequest = errors.New("invalid request body")

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		zap.L().Debug("api: decode body", zap.Error(err))
		return errBadRequest
	}
	return nil
}

func principal(r *http.Request) *auth.Principal {
	p, _ := auth.FromContext(r.Context())
	return p
}

func pageFromQuery(r *http.Request) store.Page {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return store.Page{Limit: limit, Offset: offset}
}
