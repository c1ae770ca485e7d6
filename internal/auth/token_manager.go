package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// Static errors for err113 compliance.
var (
	ErrNoValidToken     = errors.New("no valid access token, run 'jamendo authorize' and 'jamendo grant --save'")
	ErrNoRefreshToken   = errors.New("no refresh token available")
	ErrNoTokenPersister = errors.New("no token persister configured")
)

// Refresher exchanges a refresh token for a new token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*jamendo.Token, error)
}

// TokenPersister saves refreshed tokens.
type TokenPersister interface {
	SaveToken(token *jamendo.Token) error
}

// TokenManager hands out a valid access token, refreshing and persisting it
// when the stored one is stale.
type TokenManager struct {
	refresher Refresher
	persister TokenPersister
	store     *TokenStore
	logger    jamendo.Logger
	mutex     sync.Mutex
}

// NewTokenManager creates a manager seeded with initial, which may be nil.
func NewTokenManager(refresher Refresher, persister TokenPersister, initial *Token) *TokenManager {
	store := NewTokenStore()
	if initial != nil {
		store.Set(initial)
	}

	return &TokenManager{
		refresher: refresher,
		persister: persister,
		store:     store,
	}
}

// SetLogger sets the logger used to report persistence failures.
func (m *TokenManager) SetLogger(logger jamendo.Logger) {
	m.logger = logger
}

// AccessToken returns a valid access token, refreshing if necessary.
func (m *TokenManager) AccessToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another caller may have refreshed while we waited.
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	if token == nil || token.RefreshToken == "" {
		return "", ErrNoValidToken
	}

	refreshed, err := m.refresh(ctx, token.RefreshToken)
	if err != nil {
		return "", err
	}

	return refreshed.AccessToken, nil
}

// RefreshToken forces a token refresh.
func (m *TokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token := m.store.Get()
	if token == nil || token.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	_, err := m.refresh(ctx, token.RefreshToken)

	return err
}

// IsTokenExpiringSoon returns true if the token expires within the given duration.
func (m *TokenManager) IsTokenExpiringSoon(within time.Duration) bool {
	token := m.store.Get()
	if token == nil {
		return true
	}

	if token.ExpiresAt.IsZero() {
		return false
	}

	return time.Now().Add(within).After(token.ExpiresAt)
}

// GetTokenExpiry returns the current token's expiration time.
func (m *TokenManager) GetTokenExpiry() time.Time {
	token := m.store.Get()
	if token == nil {
		return time.Time{}
	}

	return token.ExpiresAt
}

// refresh must be called with m.mutex held.
func (m *TokenManager) refresh(ctx context.Context, refreshToken string) (*Token, error) {
	response, err := m.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refreshing access token: %w", err)
	}

	token := FromJamendo(response)
	if token.RefreshToken == "" {
		// The grant endpoint may omit an unchanged refresh token.
		token.RefreshToken = refreshToken
		response.RefreshToken = refreshToken
	}

	m.store.Set(token)

	persistErr := m.persist(response)
	if persistErr != nil && m.logger != nil {
		m.logger.Warn("failed to persist refreshed token", map[string]interface{}{
			"error": persistErr.Error(),
		})
	}

	return token, nil
}

func (m *TokenManager) persist(token *jamendo.Token) error {
	if m.persister == nil {
		return ErrNoTokenPersister
	}

	err := m.persister.SaveToken(token)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}
