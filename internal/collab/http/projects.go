package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Connecteamed/connected-be/internal/collab/domain"
	"github.com/Connecteamed/connected-be/internal/collab/service"
	"github.com/Connecteamed/connected-be/pkg/collabsdk"
	"github.com/Connecteamed/connected-be/pkg/httpx"
	"github.com/Connecteamed/connected-be/pkg/slogx"
)

type ProjectCreateHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP godoc
//
//	@Summary		Create Project Endpoint
//	@Description	Create a new project. The caller becomes the owner and its first member.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		collabsdk.CreateProjectRequest	true	"Create project request"
//	@Success		201		{object}	collabsdk.ProjectResponse		"id, name, ownerId, createdAt"
//	@Failure		400		{object}	collabsdk.ErrorResponse			"error, message"
//	@Failure		409		{object}	collabsdk.ErrorResponse			"error, message"
//	@Security		BearerAuth
//	@Router			/projects [post].
func (h *ProjectCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req collabsdk.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeInvalidRequest,
			Message: "Invalid JSON body",
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

	project, err := h.ProjectService.Create(ctx, req.Name, memberID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProjectRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeInvalidRequest,
				Message: "name is required",
			})
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeMemberNotFound,
				Message: "Member not found",
			})
		case errors.Is(err, service.ErrProjectNameTaken):
			httpx.WriteJSON(w, http.StatusConflict, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeProjectNameTaken,
				Message: "Project name is already taken",
			})
		default:
			log.Error("failed to create project", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, collabsdk.ErrorResponse{
				Error:   collabsdk.ErrorCodeServerError,
				Message: "Failed to create project",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProjectResponse(project))
}

type ProjectListHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP godoc
//
//	@Summary		List Projects Endpoint
//	@Description	List the projects the caller belongs to, newest first.
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{array}		collabsdk.ProjectResponse	"projects"
//	@Failure		401	{object}	collabsdk.ErrorResponse		"error, message"
//	@Security		BearerAuth
//	@Router			/projects [get].
func (h *ProjectListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	memberID, ok := httpx.MemberIDFromRequest(r)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeUnauthorized,
			Message: "Authentication required",
		})
		return
	}

	projects, err := h.ProjectService.ListForMember(ctx, memberID)
	if err != nil {
		log.Error("failed to list projects", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, collabsdk.ErrorResponse{
			Error:   collabsdk.ErrorCodeServerError,
			Message: "Failed to list projects",
		})
		return
	}

	response := make([]collabsdk.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, toProjectResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

func toProjectResponse(p domain.Project) collabsdk.ProjectResponse {
	return collabsdk.ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
	}
}
