package session

import (
	"strings"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/api"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

func validateLogin(email, password string) error {
	if email == "" {
		return &api.ValidationError{Field: "email", Message: "email is required"}
	}
	if !looksLikeEmail(email) {
		return &api.ValidationError{Field: "email", Message: "malformed email address"}
	}
	if password == "" {
		return &api.ValidationError{Field: "password", Message: "password is required"}
	}
	return nil
}

func validateRegister(req api.RegisterRequest) error {
	if req.Name == "" {
		return &api.ValidationError{Field: "name", Message: "name is required"}
	}
	if req.Email == "" {
		return &api.ValidationError{Field: "email", Message: "email is required"}
	}
	if !looksLikeEmail(req.Email) {
		return &api.ValidationError{Field: "email", Message: "malformed email address"}
	}
	if req.Password == "" {
		return &api.ValidationError{Field: "password", Message: "password is required"}
	}
	if req.AccountKind != models.AccountIndividual && req.AccountKind != models.AccountBusiness {
		return &api.ValidationError{Field: "userType", Message: "unknown account kind"}
	}
	if req.AccountKind == models.AccountBusiness && req.BusinessName == "" {
		return &api.ValidationError{Field: "businessName", Message: "business name is required"}
	}
	return nil
}

// looksLikeEmail is a cheap plausibility check: one '@' with a non-empty
// local part and a domain containing a dot. Real validation is the
// gateway's job.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	if domain == "" || strings.Contains(s, " ") {
		return false
	}
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
