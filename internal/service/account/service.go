// Package account backs the development auth stub with in-memory
// accounts, passcodes and verification tokens.
package account

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCode         = errors.New("invalid or expired passcode")
	ErrInvalidVerification = errors.New("invalid or expired verification token")
)

const (
	otpTTL          = 5 * time.Minute
	verificationTTL = 10 * time.Minute
)

// Identity mirrors the wire identity; ids are numeric like the production
// service's.
type Identity struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type record struct {
	identity     Identity
	passwordHash []byte
}

type otpRecord struct {
	code      string
	expiresAt time.Time
}

type verificationRecord struct {
	email     string
	expiresAt time.Time
}

// Service holds all stub state behind one mutex; everything is lost on
// restart, which is the point of a dev stub.
type Service struct {
	mu            sync.Mutex
	nextID        int
	accounts      map[string]*record
	otps          map[string]otpRecord
	verifications map[string]verificationRecord
}

// NewService returns an empty account service.
func NewService() *Service {
	return &Service{
		nextID:        1,
		accounts:      make(map[string]*record),
		otps:          make(map[string]otpRecord),
		verifications: make(map[string]verificationRecord),
	}
}

// Login checks credentials and issues a fresh bearer token.
func (s *Service) Login(email, password string) (Identity, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[email]
	if !ok {
		return Identity{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return Identity{}, "", ErrInvalidCredentials
	}
	return acct.identity, uuid.NewString(), nil
}

// RequestOTP issues a six-digit passcode for the email. The code is
// returned so the caller can surface it (the stub has no mail transport).
func (s *Service) RequestOTP(email string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[email] = otpRecord{code: code, expiresAt: time.Now().Add(otpTTL)}
	return code, nil
}

// VerifyOTP consumes a passcode and hands back a single-use verification
// token gating signup.
func (s *Service) VerifyOTP(email, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.otps[email]
	if !ok || pending.code != code || time.Now().After(pending.expiresAt) {
		return "", ErrInvalidCode
	}
	delete(s.otps, email)

	token := uuid.NewString()
	s.verifications[token] = verificationRecord{email: email, expiresAt: time.Now().Add(verificationTTL)}
	return token, nil
}

// Signup creates an account for a verified email and issues a bearer
// token. The verification token is consumed even on failure.
func (s *Service) Signup(email, password, name, verificationToken string) (Identity, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	verification, ok := s.verifications[verificationToken]
	delete(s.verifications, verificationToken)
	if !ok || verification.email != email || time.Now().After(verification.expiresAt) {
		return Identity{}, "", ErrInvalidVerification
	}
	if _, exists := s.accounts[email]; exists {
		return Identity{}, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, "", fmt.Errorf("hash password: %w", err)
	}

	identity := Identity{ID: s.nextID, Email: email, Name: name}
	s.nextID++
	s.accounts[email] = &record{identity: identity, passwordHash: hash}
	return identity, uuid.NewString(), nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
