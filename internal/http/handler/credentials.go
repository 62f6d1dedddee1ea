package handler

import (
	"errors"
	"net/http"
	"plugshare/internal/core"
	"plugshare/internal/http/handler/middleware"
	"plugshare/internal/http/payload"
)

func (h *PlugHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	const statusKey = "signup_status"
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.SignUpRequest
	if !h.decode(w, r, &req, statusKey, SignUp) {
		return
	}

	userId, err := h.plugShare.SignUp(r.Context(), req.ToCoreSignUpMessage())
	switch {
	case err == nil:
	case errors.Is(err, core.ErrUsernameTaken):
		h.respond(w, Response{statusKey: false, "message": usernameTakenMsg}, http.StatusOK, requestId)
		return
	case errors.Is(err, core.ErrEmptyUsername):
		h.respond(w, Response{statusKey: false, "message": emptyUsernameMsg, "error": err.Error()}, http.StatusBadRequest, requestId)
		return
	default:
		h.fail(w, r, err, statusKey, SignUp)
		return
	}

	h.logs.Infow("user registered",
		"user_id", userId,
		"handler", SignUp,
		"request_id", requestId)

	h.respond(w, Response{
		statusKey: true,
		"message": userCreatedMsg,
		"user_id": userId,
	}, http.StatusOK, requestId)
}

func (h *PlugHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	const statusKey = "signin_status"
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.AuthRequest
	if !h.decode(w, r, &req, statusKey, SignIn) {
		return
	}

	err := h.plugShare.SignIn(r.Context(), req.ToCoreAuthMessage())
	switch {
	case err == nil:
		h.respond(w, Response{statusKey: true, "message": signInSuccessMsg}, http.StatusOK, requestId)
	case errors.Is(err, core.ErrUserNotFound):
		h.respond(w, Response{statusKey: false, "message": userNotFoundMsg}, http.StatusOK, requestId)
	case errors.Is(err, core.ErrIncorrectPassword):
		h.respond(w, Response{statusKey: false, "message": wrongPasswordMsg}, http.StatusOK, requestId)
	default:
		h.fail(w, r, err, statusKey, SignIn)
	}
}
