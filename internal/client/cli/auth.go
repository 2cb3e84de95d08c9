package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/api"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
	"github.com/aadarshprajapati/docuchat-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. The rejection message, if
// any, is printed for the user; the session keeps it in LastError as well.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed: " + api.DisplayMessage(err, err.Error()))
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	return nil
}

// Register walks through the registration prompts, including the business
// branch, and signs the new account in.
func (a *App) Register(ctx context.Context) error {
	req := api.RegisterRequest{}

	var err error
	if req.Name, err = getSimpleText(a.reader, "Enter name", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	kind, err := getSimpleText(a.reader, "Account kind (individual/business)", os.Stdout)
	if err != nil {
		return err
	}
	req.AccountKind = models.AccountKind(kind)

	if req.AccountKind == models.AccountBusiness {
		if req.BusinessName, err = getSimpleText(a.reader, "Business name", os.Stdout); err != nil {
			return err
		}
		if req.Industry, err = getSimpleText(a.reader, "Industry (optional)", os.Stdout); err != nil {
			return err
		}
	}

	user, err := a.session.Register(ctx, req)
	if err != nil {
		printlnFn("Registration failed: " + api.DisplayMessage(err, err.Error()))
		return err
	}

	printlnFn(fmt.Sprintf("Account created for %s.", user.Email))
	return nil
}

// Logout tears the session down; it never fails from the CLI's perspective.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.activeChat = ""
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if snap.User == nil {
		printlnFn("Not logged in.")
		return nil
	}
	u := snap.User
	printlnFn(fmt.Sprintf("%s <%s> (%s)", u.Name, u.Email, u.AccountKind))
	if u.Business != nil {
		printlnFn(fmt.Sprintf("Business: %s, industry: %s", u.Business.Name, u.Business.Industry))
	}
	return nil
}
