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

type InviteJoinHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Join Project Endpoint
//	@Description	Redeem an invite code, adding the caller to the project it was issued for. Expired and unknown codes are rejected identically.
//	@Tags			Invites
//	@Accept			json
//	@Param			request	body	collabsdk.JoinRequest	true	"Join request"
//	@Success		204		"joined"
//	@Failure		400		{object}	collabsdk.ErrorResponse	"error, message"
//	@Failure		401		{object}	collabsdk.ErrorResponse	"error, message"
//	@Failure		404		{object}	collabsdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/invite/join [post].
func (h *InviteJoinHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req collabsdk.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeInvalidRequest,
			Message: "Invalid JSON body",
		})
		return
	}
	if req.InviteCode == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeInvalidRequest,
			Message: "inviteCode is required",
		})
		return
	}

	memberID, ok := httpx.MemberIDFromRequest(r)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeUnauthorized,
			Message: "Authentication required",
		})
		return
	}

	_, err := h.InviteService.Redeem(ctx, req.InviteCode, memberID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInviteCode):
			httpx.WriteJSON(w, http.StatusUnauthorized, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeInvalidInviteCode,
				Message: "Invite code is invalid or expired",
			})
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeMemberNotFound,
				Message: "Member not found",
			})
		case errors.Is(err, service.ErrAlreadyMember):
			httpx.WriteJSON(w, http.StatusUnauthorized, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeAlreadyInvited,
				Message: "Member already belongs to this project",
			})
		default:
			log.Error("failed to redeem invite code", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeServerError,
				Message: "Failed to join project",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
