package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"

	localCache "github.com/yatube/server/pkg/internal/cache"
	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/security"
)

// Reader verifies inbound bearer tokens. Set once during boot.
var Reader *security.TokenReader

// Authenticate checks a username and password pair. An unknown username
// and a wrong password are indistinguishable to the caller.
func Authenticate(username, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("username = ?", username).First(&account).Error; err != nil {
		return account, ErrInvalidCredentials
	}
	if !security.VerifyPassword(password, account.Password) {
		return account, ErrInvalidCredentials
	}

	return account, nil
}

// IssueTokenPair mints the access and refresh tokens for an account.
func IssueTokenPair(account models.Account) (access, refresh string, err error) {
	if access, err = Reader.Issue(account.Username, security.TokenKindAccess); err != nil {
		return
	}
	refresh, err = Reader.Issue(account.Username, security.TokenKindRefresh)
	return
}

// ExchangeRefreshToken validates a refresh token and mints a fresh access
// token for the same subject. The old token is not extended.
func ExchangeRefreshToken(tokenString string) (string, error) {
	claims, err := Reader.VerifyKind(tokenString, security.TokenKindRefresh)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return Reader.Issue(claims.Subject, security.TokenKindAccess)
}

// ResolveAccount maps a verified access token onto its account record.
// Invalid tokens and unknown subjects collapse into the same failure so
// the two cases cannot be told apart from outside.
func ResolveAccount(tokenString string) (models.Account, error) {
	var account models.Account

	claims, err := Reader.VerifyKind(tokenString, security.TokenKindAccess)
	if err != nil {
		return account, ErrInvalidCredentials
	}

	account, err = GetAccountByUsername(claims.Subject)
	if err != nil {
		return account, ErrInvalidCredentials
	}

	return account, nil
}

func RequireActiveAccount(account models.Account) (models.Account, error) {
	if !account.IsActive {
		return account, ErrInactiveAccount
	}
	return account, nil
}

// CanMutate is the ownership policy applied to posts and comments:
// strict equality between the requester and the recorded author.
func CanMutate(accountID, authorID uint) bool {
	return accountID == authorID
}

func GetAccountByUsername(username string) (models.Account, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	cacheKey := fmt.Sprintf("account-query#%s", username)
	if hit, err := marshal.Get(ctx, cacheKey, new(models.Account)); err == nil {
		return *hit.(*models.Account), nil
	}

	var account models.Account
	if err := database.C.Where("username = ?", username).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by username: %v", err)
	}

	_ = marshal.Set(
		ctx,
		cacheKey,
		account,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"account-query", fmt.Sprintf("account#%d", account.ID)}),
	)

	return account, nil
}

func InvalidAccountCache(username string) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	_ = marshal.Delete(ctx, fmt.Sprintf("account-query#%s", username))
}
