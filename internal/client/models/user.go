// Package models contains the data types exchanged with the DocuChat gateway.
package models

import "time"

// AccountKind distinguishes individual accounts from business accounts.
type AccountKind string

const (
	AccountIndividual AccountKind = "individual"
	AccountBusiness   AccountKind = "business"
)

// User is the authenticated user record returned by the gateway. It is owned
// by the session controller; other components treat it as read-only.
type User struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	AccountKind AccountKind      `json:"userType"`
	Business    *BusinessProfile `json:"business,omitempty"`
	CreatedAt   time.Time        `json:"createdAt,omitempty"`
}

// BusinessProfile holds the extra attributes of a business account. It is
// present only when AccountKind is AccountBusiness.
type BusinessProfile struct {
	Name      string `json:"businessName"`
	Size      string `json:"businessSize,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Plan      string `json:"plan,omitempty"`
	Website   string `json:"website,omitempty"`
	TeamSize  int    `json:"teamSize,omitempty"`
	APIAccess bool   `json:"apiAccess,omitempty"`
}

// IsBusiness reports whether the user registered a business account.
func (u *User) IsBusiness() bool {
	return u.AccountKind == AccountBusiness
}

// APIKey is a generated programmatic-access credential.
type APIKey struct {
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"createdAt"`
}

// Usage summarizes resource consumption for the current billing period.
type Usage struct {
	MessagesUsed      int       `json:"messagesUsed"`
	MessagesLimit     int       `json:"messagesLimit"`
	DocumentsUsed     int       `json:"documentsUsed"`
	DocumentsLimit    int       `json:"documentsLimit"`
	StorageUsedBytes  int64     `json:"storageUsedBytes"`
	StorageLimitBytes int64     `json:"storageLimitBytes"`
	PeriodStart       time.Time `json:"periodStart"`
	PeriodEnd         time.Time `json:"periodEnd"`
}
