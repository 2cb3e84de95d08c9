// Package api implements the client for the DocuChat gateway REST API.
//
// The Client interface mirrors the gateway surface; RESTClient is the
// concrete HTTP implementation. Errors returned by all methods belong to the
// taxonomy in errors.go: *ValidationError, *AuthError, *RequestError,
// *ServerError, *NetworkError.
package api

import (
	"context"
	"io"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

// RegisterRequest is the registration payload. Business registrations must
// carry a business name; the remaining business fields are optional.
type RegisterRequest struct {
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Password     string             `json:"password"`
	AccountKind  models.AccountKind `json:"userType"`
	BusinessName string             `json:"businessName,omitempty"`
	BusinessSize string             `json:"businessSize,omitempty"`
	Industry     string             `json:"industry,omitempty"`
	Plan         string             `json:"plan,omitempty"`
	Website      string             `json:"website,omitempty"`
	TeamSize     int                `json:"teamSize,omitempty"`
	APIAccess    bool               `json:"apiAccess,omitempty"`
}

// ProfileUpdate carries the mutable fields of the caller's own profile.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// PasswordChange carries a password rotation request.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// SubscribeRequest binds the account to a plan.
type SubscribeRequest struct {
	PlanID string `json:"planId"`
}

// Client is the full gateway surface used by the CLI and services. Consumers
// that need less should declare their own narrow interface (the session
// controller does).
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, req RegisterRequest) (*models.User, string, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error

	// Token plumbing. SetToken attaches the bearer token to every subsequent
	// request; an empty string detaches it.
	SetToken(token string)
	Token() string

	// Users.
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, chg PasswordChange) error
	GetUsage(ctx context.Context) (*models.Usage, error)
	DeleteAccount(ctx context.Context) error
	GenerateAPIKey(ctx context.Context) (*models.APIKey, error)

	// Documents.
	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	UploadDocument(ctx context.Context, name, contentType string, r io.Reader) (*models.Document, error)
	UpdateDocument(ctx context.Context, id string, upd models.DocumentUpdate) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error

	// Models.
	ListModels(ctx context.Context) ([]models.Model, error)
	GetModel(ctx context.Context, id string) (*models.Model, error)
	CreateModel(ctx context.Context, spec models.ModelSpec) (*models.Model, error)
	TrainModel(ctx context.Context, id string) (*models.Model, error)
	DeleteModel(ctx context.Context, id string) error

	// Chats.
	ListChats(ctx context.Context) ([]models.Chat, error)
	GetChat(ctx context.Context, id string) (*models.Chat, error)
	CreateChat(ctx context.Context, spec models.ChatSpec) (*models.Chat, error)
	UpdateChat(ctx context.Context, id string, upd models.ChatUpdate) (*models.Chat, error)
	DeleteChat(ctx context.Context, id string) error
	SendMessage(ctx context.Context, chatID, content string) (*models.Message, error)

	// Teams.
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	CreateTeam(ctx context.Context, spec models.TeamSpec) (*models.Team, error)
	UpdateTeam(ctx context.Context, id string, spec models.TeamSpec) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	AddTeamMember(ctx context.Context, teamID string, spec models.MemberSpec) (*models.Team, error)
	UpdateMemberRole(ctx context.Context, teamID, userID string, spec models.MemberSpec) (*models.Team, error)
	RemoveTeamMember(ctx context.Context, teamID, userID string) error

	// Billing.
	ListPlans(ctx context.Context) ([]models.Plan, error)
	GetSubscription(ctx context.Context) (*models.Subscription, error)
	Subscribe(ctx context.Context, req SubscribeRequest) (*models.Subscription, error)
	CancelSubscription(ctx context.Context) error
	PaymentHistory(ctx context.Context) ([]models.Payment, error)
	UpdatePaymentMethod(ctx context.Context, pm models.PaymentMethod) error
}
