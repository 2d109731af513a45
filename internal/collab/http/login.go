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

type LoginHandler struct {
	MemberService *service.MemberService
}

// ServeHTTP godoc
//
//	@Summary		Member Login Endpoint
//	@Description	Exchange a handle and password for an HS256 JWT access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		collabsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	collabsdk.LoginResponse	"accessToken, tokenType, expiresIn, member"
//	@Failure		400		{object}	collabsdk.ErrorResponse	"error, message"
//	@Failure		401		{object}	collabsdk.ErrorResponse	"error, message"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req collabsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeInvalidRequest,
			Message: "Invalid JSON body",
		})
		return
	}

	member, token, err := h.MemberService.Login(ctx, req.Handle, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeInvalidCredentials,
				Message: "Invalid handle or password",
			})
			return
		}
		log.Error("failed to log member in", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeServerError,
			Message: "Failed to log in",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, collabsdk.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.MemberService.Signer.TTL.Seconds()),
		Member: collabsdk.MemberResponse{
			ID:          member.ID,
			Handle:      member.Handle,
			DisplayName: member.DisplayName,
		},
	})
}
