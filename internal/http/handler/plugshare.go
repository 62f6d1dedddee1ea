package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"plugshare/internal/http/handler/middleware"
	"time"

	"go.uber.org/zap"
)

var TimeNow = time.Now

var (
	Welcome     = "GET /{$}"
	SignUp      = "POST /signup"
	SignIn      = "POST /signin"
	AddPlug     = "POST /addplug"
	EditPlug    = "POST /editplug"
	MyPlugs     = "GET /myplugs"
	DeletePlug  = "DELETE /deleteplug"
	LikePlug    = "POST /likeplug"
	DislikePlug = "POST /dislikeplug"
	GetUsers    = "GET /getusers"
)

type PlugHandler struct {
	logs      *zap.SugaredLogger
	decoder   RequestDecoder
	plugShare PlugService
}

func NewPlugHandler(logger *zap.SugaredLogger, decoder RequestDecoder, plugService PlugService) *PlugHandler {
	return &PlugHandler{
		logs:      logger,
		decoder:   decoder,
		plugShare: plugService,
	}
}

// Register binds every endpoint of the handler to mux.
func (h *PlugHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Welcome, h.HandleWelcome)
	mux.HandleFunc(SignUp, h.HandleSignUp)
	mux.HandleFunc(SignIn, h.HandleSignIn)
	mux.HandleFunc(AddPlug, h.HandleAddPlug)
	mux.HandleFunc(EditPlug, h.HandleEditPlug)
	mux.HandleFunc(MyPlugs, h.HandleMyPlugs)
	mux.HandleFunc(DeletePlug, h.HandleDeletePlug)
	mux.HandleFunc(LikePlug, h.HandleLikePlug)
	mux.HandleFunc(DislikePlug, h.HandleDislikePlug)
	mux.HandleFunc(GetUsers, h.HandleGetUsers)
}

func (h *PlugHandler) HandleWelcome(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{"message": welcomeMsg}, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

// decode reports whether object was decoded and validated. On failure it has
// already written a 400 response with statusKey set to false.
func (h *PlugHandler) decode(w http.ResponseWriter, r *http.Request, object any, statusKey, route string) bool {
	requestId := middleware.RequestIDFrom(r.Context())

	err := h.decoder.DecodePayload(r, object)
	if err == nil {
		return true
	}

	resp := Response{
		"message": invalidErr,
		"error":   fmt.Errorf("invalid request payload: %w", err).Error(),
	}
	if statusKey != "" {
		resp[statusKey] = false
	}

	h.respond(w, resp, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
	return false
}

func (h *PlugHandler) fail(w http.ResponseWriter, r *http.Request, err error, statusKey, route string) {
	requestId := middleware.RequestIDFrom(r.Context())

	resp := Response{
		"message": oopsErr,
		"error":   unexpectedErr,
	}
	if statusKey != "" {
		resp[statusKey] = false
	}

	h.respond(w, resp, http.StatusInternalServerError, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *PlugHandler) respond(w http.ResponseWriter, resp Response, code int, requestId string) {
	resp["timestamp"] = TimeNow().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
