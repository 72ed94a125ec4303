package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/uidejarvis/jarvis/internal/domain/search"
)

// BinarySearchHandler handles POST /binary-search.
type BinarySearchHandler struct {
	logger *zap.Logger
}

// NewBinarySearchHandler creates a BinarySearchHandler. A nil logger disables logging.
func NewBinarySearchHandler(logger *zap.Logger) *BinarySearchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BinarySearchHandler{logger: logger}
}

type binarySearchRequest struct {
	Array  *[]int `json:"array"`
	Target *int   `json:"target"`
}

// Search validates the array and returns the traced search result.
// Validation failures are client errors and are only logged at debug level.
func (h *BinarySearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req binarySearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.Array == nil || req.Target == nil {
		writeError(w, http.StatusUnprocessableEntity, "array and target are required")
		return
	}

	if err := search.ValidateSequence(*req.Array); err != nil {
		if !search.IsValidationError(err) {
			h.logger.Error("binary search validation failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		h.logger.Debug("binary search rejected", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, search.Search(*req.Array, *req.Target))
}
