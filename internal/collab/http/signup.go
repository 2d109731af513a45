package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Connecteamed/connected-be/internal/collab/service"
	"github.com/Connecteamed/connected-be/pkg/collabsdk"
	"github.com/Connecteamed/connected-be/pkg/httpx"
	"github.com/Connecteamed/connected-be/pkg/slogx"
)

type SignupHandler struct {
	MemberService *service.MemberService
}

// ServeHTTP godoc
//
//	@Summary		Member Signup Endpoint
//	@Description	Register a new member account with a handle and password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		collabsdk.SignupRequest	true	"Signup request"
//	@Success		201		{object}	collabsdk.MemberResponse	"id, handle, displayName"
//	@Failure		400		{object}	collabsdk.ErrorResponse		"error, message"
//	@Failure		409		{object}	collabsdk.ErrorResponse		"error, message"
//	@Router			/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req collabsdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeInvalidRequest,
			Message: "Invalid JSON body",
		})
		return
	}

	member, err := h.MemberService.Register(ctx, req.Handle, req.DisplayName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignupRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeInvalidRequest,
				Message: "handle and password are required",
			})
		case errors.Is(err, service.ErrHandleAlreadyTaken):
			httpx.WriteJSON(w, http.StatusConflict, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeHandleTaken,
				Message: "Handle is already taken",
			})
		default:
			log.Error("failed to register member", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeServerError,
				Message: "Failed to register member",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, collabsdk.MemberResponse{
		ID:          member.ID,
		Handle:      member.Handle,
		DisplayName: member.DisplayName,
	})
}
