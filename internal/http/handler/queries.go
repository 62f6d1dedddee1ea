package handler

import (
	"net/http"
	"plugshare/internal/http/handler/middleware"
	"plugshare/internal/http/payload"
)

func (h *PlugHandler) HandleMyPlugs(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.UserRequest
	if !h.decode(w, r, &req, "", MyPlugs) {
		return
	}

	plugs, err := h.plugShare.MyPlugs(r.Context(), req.UserID)
	if err != nil {
		h.fail(w, r, err, "", MyPlugs)
		return
	}

	h.logs.Infow("plugs retrieved",
		"user_id", req.UserID,
		"num_of_plugs", len(plugs),
		"handler", MyPlugs,
		"request_id", requestId)

	h.respond(w, Response{"plugs": plugs}, http.StatusOK, requestId)
}

func (h *PlugHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	users, err := h.plugShare.GetUsers(r.Context())
	if err != nil {
		h.fail(w, r, err, "", GetUsers)
		return
	}

	h.respond(w, Response{"users": users}, http.StatusOK, requestId)
}
