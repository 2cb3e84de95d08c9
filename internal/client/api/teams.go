package api

import (
	"context"
	"net/http"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

func (c *RESTClient) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if _, err := c.do(ctx, http.MethodGet, "/api/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *RESTClient) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if _, err := c.do(ctx, http.MethodGet, "/api/teams/"+id, nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *RESTClient) CreateTeam(ctx context.Context, spec models.TeamSpec) (*models.Team, error) {
	var team models.Team
	if _, err := c.do(ctx, http.MethodPost, "/api/teams", spec, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *RESTClient) UpdateTeam(ctx context.Context, id string, spec models.TeamSpec) (*models.Team, error) {
	var team models.Team
	if _, err := c.do(ctx, http.MethodPut, "/api/teams/"+id, spec, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *RESTClient) DeleteTeam(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/teams/"+id, nil, nil)
	return err
}

func (c *RESTClient) AddTeamMember(ctx context.Context, teamID string, spec models.MemberSpec) (*models.Team, error) {
	var team models.Team
	if _, err := c.do(ctx, http.MethodPost, "/api/teams/"+teamID+"/members", spec, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *RESTClient) UpdateMemberRole(ctx context.Context, teamID, userID string, spec models.MemberSpec) (*models.Team, error) {
	var team models.Team
	if _, err := c.do(ctx, http.MethodPut, "/api/teams/"+teamID+"/members/"+userID, spec, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *RESTClient) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/teams/"+teamID+"/members/"+userID, nil, nil)
	return err
}
