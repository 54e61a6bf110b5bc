package handler

import (
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/darkodi/base58/internal/errors"
	"github.com/darkodi/base58/internal/model"
	"github.com/darkodi/base58/internal/service"
	"github.com/darkodi/base58/internal/validator"
)

// CodecHandler handles HTTP requests for codec operations
type CodecHandler struct {
	service   *service.CodecService
	validator *validator.RequestValidator
}

// NewCodecHandler creates a new handler instance
func NewCodecHandler(svc *service.CodecService) *CodecHandler {
	return &CodecHandler{
		service:   svc,
		validator: validator.NewRequestValidator(),
	}
}

// ============ HANDLERS ============

// HandleEncode encodes a hex payload
// POST /encode
func (h *CodecHandler) HandleEncode(w http.ResponseWriter, r *http.Request) {
	var req model.EncodeRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	if appErr := h.validator.ValidatePayloadHex(req.Data); appErr != nil {
		appErr.WriteJSON(w)
		return
	}

	data, err := hex.DecodeString(req.Data)
	if err != nil {
		errors.InvalidPayload(err.Error()).WriteJSON(w)
		return
	}

	writeJSON(w, http.StatusOK, model.EncodeResponse{
		Encoded: h.service.EncodeBytes(data),
	})
}

// HandleDecode decodes base58 text, optionally to a fixed width
// POST /decode
func (h *CodecHandler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	var req model.DecodeRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	if appErr := h.validator.ValidateEncoded(req.Encoded); appErr != nil {
		appErr.WriteJSON(w)
		return
	}

	var (
		data []byte
		err  error
	)
	if req.Size != nil {
		if appErr := h.validator.ValidateTargetSize(*req.Size); appErr != nil {
			appErr.WriteJSON(w)
			return
		}
		data, err = h.service.DecodeBytesToSize(req.Encoded, *req.Size)
	} else {
		data, err = h.service.DecodeBytes(req.Encoded)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.DecodeResponse{
		Data: hex.EncodeToString(data),
		Size: len(data),
	})
}

// HandleEncodeInt64 encodes a 64-bit integer's raw bit pattern
// POST /encode/int64
func (h *CodecHandler) HandleEncodeInt64(w http.ResponseWriter, r *http.Request) {
	var req model.EncodeInt64Request
	if !h.readJSON(w, r, &req) {
		return
	}

	if req.Value == "" {
		errors.MissingField("value").WriteJSON(w)
		return
	}
	v, err := strconv.ParseInt(req.Value, 10, 64)
	if err != nil {
		errors.BadRequest("value must be a 64-bit decimal integer").WriteJSON(w)
		return
	}

	writeJSON(w, http.StatusOK, model.Int64Response{
		Value:   req.Value,
		Encoded: h.service.EncodeInt64(v),
	})
}

// HandleDecodeInt64 decodes base58 text as a 64-bit integer
// POST /decode/int64
func (h *CodecHandler) HandleDecodeInt64(w http.ResponseWriter, r *http.Request) {
	var req model.DecodeInt64Request
	if !h.readJSON(w, r, &req) {
		return
	}

	if appErr := h.validator.ValidateEncoded(req.Encoded); appErr != nil {
		appErr.WriteJSON(w)
		return
	}

	v, err := h.service.DecodeInt64(req.Encoded)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Int64Response{
		Value:   strconv.FormatInt(v, 10),
		Encoded: req.Encoded,
	})
}

// HandleEncodeUUID encodes a canonical UUID
// POST /encode/uuid
func (h *CodecHandler) HandleEncodeUUID(w http.ResponseWriter, r *http.Request) {
	var req model.EncodeUUIDRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	if req.UUID == "" {
		errors.MissingField("uuid").WriteJSON(w)
		return
	}

	encoded, err := h.service.EncodeUUID(req.UUID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.UUIDResponse{
		UUID:    req.UUID,
		Encoded: encoded,
	})
}

// HandleDecodeUUID decodes base58 text back into a UUID
// POST /decode/uuid
func (h *CodecHandler) HandleDecodeUUID(w http.ResponseWriter, r *http.Request) {
	var req model.DecodeUUIDRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	if appErr := h.validator.ValidateEncoded(req.Encoded); appErr != nil {
		appErr.WriteJSON(w)
		return
	}

	u, err := h.service.DecodeUUID(req.Encoded)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.UUIDResponse{
		UUID:    u.String(),
		Encoded: req.Encoded,
	})
}

// HandleEncodeName derives and encodes a name-based UUID
// POST /encode/name
func (h *CodecHandler) HandleEncodeName(w http.ResponseWriter, r *http.Request) {
	var req model.EncodeNameRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	if appErr := h.validator.ValidateName(req.Name); appErr != nil {
		appErr.WriteJSON(w)
		return
	}

	u, encoded := h.service.EncodeName(r.Context(), req.Name)

	writeJSON(w, http.StatusOK, model.UUIDResponse{
		UUID:    u.String(),
		Encoded: encoded,
	})
}

// HandleHealth returns service health status
// GET /health
func (h *CodecHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}

// ============ HELPERS ============

// readJSON rejects non-POST methods and parses the request body. It
// writes the error response itself and reports success to the caller.
func (h *CodecHandler) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		errors.BadRequest("Use POST method").WriteJSON(w)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errors.InvalidJSON(err.Error()).WriteJSON(w)
		return false
	}
	return true
}

// writeServiceError maps service errors to AppErrors
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, service.ErrInvalidCharacter):
		errors.InvalidCharacter(err.Error()).WriteJSON(w)
	case stderrors.Is(err, service.ErrSizeMismatch):
		errors.SizeMismatch(err.Error()).WriteJSON(w)
	case stderrors.Is(err, service.ErrInvalidUUID):
		errors.InvalidUUID(err.Error()).WriteJSON(w)
	default:
		errors.Internal("").WriteJSON(w)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// ============ ROUTER SETUP ============

// SetupRoutes configures all HTTP routes
func (h *CodecHandler) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/encode", h.HandleEncode)
	mux.HandleFunc("/decode", h.HandleDecode)
	mux.HandleFunc("/encode/int64", h.HandleEncodeInt64)
	mux.HandleFunc("/decode/int64", h.HandleDecodeInt64)
	mux.HandleFunc("/encode/uuid", h.HandleEncodeUUID)
	mux.HandleFunc("/decode/uuid", h.HandleDecodeUUID)
	mux.HandleFunc("/encode/name", h.HandleEncodeName)
	mux.HandleFunc("/health", h.HandleHealth)

	return mux
}
