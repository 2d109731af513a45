package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Connecteamed/connected-be/internal/collab/service"
	"github.com/Connecteamed/connected-be/pkg/collabsdk"
	"github.com/Connecteamed/connected-be/pkg/httpx"
	"github.com/Connecteamed/connected-be/pkg/slogx"
)

type InviteIssueHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Project Invite Endpoint
//	@Description	Fetch an invite code for a project. While the current code still has at least an hour of life left it is returned as-is; otherwise a fresh code valid for 24 hours is minted. Only existing project members may fetch invite codes.
//	@Tags			Invites
//	@Produce		json
//	@Param			projectID	path		int							true	"Project ID"
//	@Success		200			{object}	collabsdk.InviteResponse	"inviteCode, expiredAt"
//	@Failure		400			{object}	collabsdk.ErrorResponse		"error, message"
//	@Failure		401			{object}	collabsdk.ErrorResponse		"error, message"
//	@Failure		404			{object}	collabsdk.ErrorResponse		"error, message"
//	@Security		BearerAuth
//	@Router			/invite/{projectID} [get].
func (h *InviteIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Project IDs are positive integers; anything else is a malformed
	// request, not a missing project.
	projectID, err := strconv.ParseInt(r.PathValue("projectID"), 10, 64)
	if err != nil || projectID <= 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeInvalidRequest,
			Message: "projectID must be a positive integer",
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

	code, err := h.InviteService.IssueOrReuse(ctx, projectID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeProjectNotFound,
				Message: "Project not found",
			})
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeMemberNotFound,
				Message: "Member not found",
			})
		case errors.Is(err, service.ErrNotProjectMember):
			httpx.WriteJSON(w, http.StatusUnauthorized, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeUnauthorizedMember,
				Message: "Only project members may fetch invite codes",
			})
		case errors.Is(err, service.ErrCodeGenerationExhausted):
			httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeGenerationFailed,
				Message: "Could not generate a unique invite code, try again",
			})
		default:
			log.Error("failed to issue invite code", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeServerError,
				Message: "Failed to issue invite code",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, collabsdk.InviteResponse{
		InviteCode: code.Code,
		ExpiredAt:  code.ExpiresAt,
	})
}
