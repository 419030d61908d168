// internal/services/account_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/store"
	"github.com/artisanmarket/backend/internal/utils"
)

// AccountService owns the single currentUser record. There is no account
// directory and no credentials — authentication is out of scope for this
// storefront, only the routing decision between buyer and seller pages.
type AccountService struct {
	kv store.KVStore
}

func NewAccountService(kv store.KVStore) *AccountService {
	return &AccountService{kv: kv}
}

// Current returns the active user record, ErrNotFound when nobody is
// signed in.
func (s *AccountService) Current(ctx context.Context) (models.UserAccount, error) {
	var user models.UserAccount
	ok, err := store.GetJSON(ctx, s.kv, store.KeyCurrentUser, &user)
	if err != nil {
		return models.UserAccount{}, err
	}
	if !ok || user.Email == "" {
		return models.UserAccount{}, fmt.Errorf("%w: no current user", ErrNotFound)
	}
	return user, nil
}

// Register validates the draft and persists it as the current user. A
// seller registration seeds an empty seller-scoped inventory so the
// dashboard has a collection to read.
func (s *AccountService) Register(ctx context.Context, draft models.RegistrationDraft) (models.UserAccount, error) {
	if err := utils.ValidateStruct(&draft); err != nil {
		return models.UserAccount{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user := models.UserAccount{
		Email:         strings.ToLower(strings.TrimSpace(draft.Email)),
		FirstName:     draft.FirstName,
		LastName:      draft.LastName,
		AccountType:   draft.AccountType,
		BusinessName:  draft.BusinessName,
		BusinessPhone: draft.BusinessPhone,
		CreatedAt:     time.Now().UnixMilli(),
	}

	if err := store.SetJSON(ctx, s.kv, store.KeyCurrentUser, user); err != nil {
		return models.UserAccount{}, err
	}

	if user.IsSeller() {
		key := store.SellerProductsKey(user.Email)
		var existing []models.Product
		ok, err := store.GetJSON(ctx, s.kv, key, &existing)
		if err != nil {
			return models.UserAccount{}, err
		}
		// A returning seller keeps the inventory persisted before logout.
		if !ok {
			if err := store.SetJSON(ctx, s.kv, key, []models.Product{}); err != nil {
				return models.UserAccount{}, err
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"email":        user.Email,
		"account_type": user.AccountType,
	}).Info("User registered")
	return user, nil
}

// Login matches the given email against the persisted current record.
// This storefront keeps a single active record, not a directory.
func (s *AccountService) Login(ctx context.Context, email string) (models.UserAccount, error) {
	user, err := s.Current(ctx)
	if err != nil {
		return models.UserAccount{}, err
	}

	if !strings.EqualFold(user.Email, strings.TrimSpace(email)) {
		return models.UserAccount{}, fmt.Errorf("%w: no account for %s", ErrNotFound, email)
	}
	return user, nil
}

// Logout clears the current record only. Seller inventories and the
// global catalog are retained.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.kv.Delete(ctx, store.KeyCurrentUser)
}
