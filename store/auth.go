package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
)

var ErrInvalidProvider = errors.New("invalid auth provider")

type authSnapshot struct {
	User           *models.AuthUser `json:"user"`
	HasSkippedAuth bool             `json:"hasSkippedAuth"`
}

// AuthStore tracks the signed-in user or the guest-skip flag. It holds a
// one-way dependency on the cart store: logging out resets the cart. The
// cart store knows nothing about auth.
type AuthStore struct {
	mu             sync.RWMutex
	user           *models.AuthUser
	hasSkippedAuth bool
	hydrated       bool
	storage        Storage
	cart           *CartStore
	now            func() time.Time
}

func NewAuthStore(storage Storage, cart *CartStore) *AuthStore {
	s := &AuthStore{storage: storage, cart: cart, now: time.Now}
	s.hydrate()
	return s
}

func (s *AuthStore) hydrate() {
	defer func() {
		// Hydration completing (even against missing or corrupt data)
		// unblocks consumers waiting to make gating decisions.
		s.mu.Lock()
		s.hydrated = true
		s.mu.Unlock()
	}()
	data, ok, err := s.storage.Load(AuthStoreName)
	if err != nil {
		log.WithError(err).Warn("auth store: failed to load snapshot, starting signed out")
		return
	}
	if !ok {
		return
	}
	var snap authSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.WithError(err).Warn("auth store: corrupt snapshot, starting signed out")
		return
	}
	s.user = snap.User
	s.hasSkippedAuth = snap.HasSkippedAuth
}

// SignIn synthesizes the mock profile for the provider and signs the user
// in, clearing any previous guest-skip flag.
func (s *AuthStore) SignIn(provider models.AuthProvider) (models.AuthUser, error) {
	var name, email, phone string
	switch provider {
	case models.ProviderGoogle:
		name, email, phone = "Vasanth Dommeti", "vasanth.dommeti@example.com", "+965 5000 1111"
	case models.ProviderFacebook:
		name, email, phone = "Abhishek Rovia", "abhishek.rovia@example.com", "+965 5000 2222"
	case models.ProviderEmail:
		name, email, phone = "Kiranna Shopper", "shopper@example.com", "+965 5000 3333"
	default:
		return models.AuthUser{}, ErrInvalidProvider
	}

	now := s.now().UnixMilli()
	user := models.AuthUser{
		ID:        fmt.Sprintf("%s-%d", provider, now),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Provider:  provider,
		CreatedAt: now,
	}

	s.mu.Lock()
	s.user = &user
	s.hasSkippedAuth = false
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
	return user, nil
}

// SkipAuth marks the session as browsing without an account.
func (s *AuthStore) SkipAuth() {
	s.mu.Lock()
	s.hasSkippedAuth = true
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
}

// Logout resets the cart, then clears the user and the skip flag.
func (s *AuthStore) Logout() {
	s.cart.ClearCart()
	s.mu.Lock()
	s.user = nil
	s.hasSkippedAuth = false
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
}

// User returns a copy of the signed-in user, or nil when signed out.
func (s *AuthStore) User() *models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) HasSkippedAuth() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasSkippedAuth
}

// HasHydrated reports whether the persisted snapshot has been loaded.
// Consumers must treat pre-hydration state as unknown and defer gating
// decisions until this is true.
func (s *AuthStore) HasHydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

func (s *AuthStore) encodeLocked() []byte {
	data, err := json.Marshal(authSnapshot{User: s.user, HasSkippedAuth: s.hasSkippedAuth})
	if err != nil {
		log.WithError(err).Warn("auth store: failed to encode snapshot")
		return nil
	}
	return data
}

func (s *AuthStore) persist(data []byte) {
	if data == nil {
		return
	}
	if err := s.storage.Save(AuthStoreName, data); err != nil {
		log.WithError(err).Warn("auth store: failed to persist snapshot")
	}
}
