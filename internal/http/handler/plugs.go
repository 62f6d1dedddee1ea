package handler

import (
	"context"
	"errors"
	"net/http"
	"plugshare/internal/core"
	"plugshare/internal/http/handler/middleware"
	"plugshare/internal/http/payload"
)

func (h *PlugHandler) HandleAddPlug(w http.ResponseWriter, r *http.Request) {
	const statusKey = "add_plug_status"
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.AddPlugRequest
	if !h.decode(w, r, &req, statusKey, AddPlug) {
		return
	}

	plugId, err := h.plugShare.AddPlug(r.Context(), req.ToCorePlugMessage())
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.respond(w, Response{statusKey: false, "message": userNotFoundMsg}, http.StatusOK, requestId)
			return
		}
		h.fail(w, r, err, statusKey, AddPlug)
		return
	}

	h.respond(w, Response{
		statusKey: true,
		"message": plugAddedMsg,
		"plug_id": plugId,
	}, http.StatusOK, requestId)
}

func (h *PlugHandler) HandleEditPlug(w http.ResponseWriter, r *http.Request) {
	const statusKey = "edit_plug_status"
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.EditPlugRequest
	if !h.decode(w, r, &req, statusKey, EditPlug) {
		return
	}

	err := h.plugShare.EditPlug(r.Context(), req.ToCoreEditPlugMessage())
	if err != nil {
		if errors.Is(err, core.ErrPlugNotFound) {
			h.respond(w, Response{statusKey: false, "message": plugNotFoundMsg}, http.StatusOK, requestId)
			return
		}
		h.fail(w, r, err, statusKey, EditPlug)
		return
	}

	h.respond(w, Response{statusKey: true, "message": plugEditedMsg}, http.StatusOK, requestId)
}

func (h *PlugHandler) HandleDeletePlug(w http.ResponseWriter, r *http.Request) {
	const statusKey = "delete_plug_status"
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.PlugUserRequest
	if !h.decode(w, r, &req, statusKey, DeletePlug) {
		return
	}

	if err := h.plugShare.DeletePlug(r.Context(), req.PlugID, req.UserID); err != nil {
		h.fail(w, r, err, statusKey, DeletePlug)
		return
	}

	h.respond(w, Response{statusKey: true, "message": plugDeletedMsg}, http.StatusOK, requestId)
}

func (h *PlugHandler) HandleLikePlug(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, "like_status", LikePlug, plugLikedMsg, h.plugShare.LikePlug)
}

func (h *PlugHandler) HandleDislikePlug(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, "dislike_status", DislikePlug, plugDislikedMsg, h.plugShare.DislikePlug)
}

func (h *PlugHandler) handleReaction(w http.ResponseWriter, r *http.Request,
	statusKey, route, okMsg string,
	react func(ctx context.Context, plugID, userID string) error,
) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.PlugUserRequest
	if !h.decode(w, r, &req, statusKey, route) {
		return
	}

	if err := react(r.Context(), req.PlugID, req.UserID); err != nil {
		if errors.Is(err, core.ErrPlugNotFound) {
			h.respond(w, Response{statusKey: false, "message": plugNotFoundMsg}, http.StatusOK, requestId)
			return
		}
		h.fail(w, r, err, statusKey, route)
		return
	}

	h.respond(w, Response{statusKey: true, "message": okMsg}, http.StatusOK, requestId)
}
