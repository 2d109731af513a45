package collabsdk

import (
	"context"
	"fmt"
	"net/http"
)

// Session is an authenticated handle on the service for one member.
type Session struct {
	client *SDKClient

	AccessToken string
	Member      MemberResponse
}

// CreateProject makes a new project owned by the session's member.
func (s *Session) CreateProject(ctx context.Context, name string) (ProjectResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/projects", CreateProjectRequest{Name: name})
	if err != nil {
		return ProjectResponse{}, err
	}

	var project ProjectResponse
	if err := decodeJSON(resp, &project, http.StatusCreated); err != nil {
		return ProjectResponse{}, err
	}
	return project, nil
}

// ListProjects returns the projects the session's member belongs to.
func (s *Session) ListProjects(ctx context.Context) ([]ProjectResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, err
	}

	var projects []ProjectResponse
	if err := decodeJSON(resp, &projects, http.StatusOK); err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectInvite fetches an invite code for the project. The service hands
// back the current code while it still has enough life left, so repeated
// calls may return the same code.
func (s *Session) ProjectInvite(ctx context.Context, projectID int64) (InviteResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, fmt.Sprintf("/invite/%d", projectID), nil)
	if err != nil {
		return InviteResponse{}, err
	}

	var invite InviteResponse
	if err := decodeJSON(resp, &invite, http.StatusOK); err != nil {
		return InviteResponse{}, err
	}
	return invite, nil
}

// JoinProject redeems an invite code, adding the session's member to the
// project behind it.
func (s *Session) JoinProject(ctx context.Context, inviteCode string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/invite/join", JoinRequest{InviteCode: inviteCode})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
