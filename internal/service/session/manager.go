// Package session owns the authenticated-identity state of the client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/seojinpark/talktemplate/client/internal/model/auth"
	"github.com/seojinpark/talktemplate/client/internal/service/authapi"
	"github.com/seojinpark/talktemplate/client/internal/store"
)

// State is the manager's lifecycle position. StateRestoring lasts from
// construction until the first completed Restore, so callers can tell
// "still restoring" apart from "definitely unauthenticated".
type State int

const (
	StateRestoring State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Result is how mutating operations report back. Failures are values
// carrying a user-displayable message, never panics.
type Result struct {
	Success bool
	Error   string
}

func failure(message string) Result { return Result{Error: message} }

var success = Result{Success: true}

// User-facing messages. Service-provided rejection text takes precedence
// over these fallbacks.
const (
	msgLoginFailed      = "로그인에 실패했습니다."
	msgRegisterFailed   = "회원가입에 실패했습니다."
	msgOTPRequestFailed = "인증번호 발송에 실패했습니다."
	msgConnectivity     = "서버에 연결할 수 없습니다. 잠시 후 다시 시도해 주세요."
	msgEmailRequired    = "이메일을 입력해주세요."
	msgPasswordRequired = "비밀번호를 입력해주세요."
	msgNameRequired     = "이름을 입력해주세요."
	msgCodeRequired     = "인증번호를 입력해주세요."
)

// Manager is the single source of truth for "is a user authenticated,
// and who are they". It synchronizes in-memory state with the durable
// store on restore and on every mutation.
//
// Mutating operations are expected to be invoked one at a time (the
// caller disables its triggering control while one is pending);
// concurrent Login/Register/Logout calls have undefined relative
// ordering and are not queued.
type Manager struct {
	api   *authapi.Client
	store store.Store

	mu      sync.RWMutex
	state   State
	session auth.Session
}

// NewManager builds a manager in StateRestoring.
func NewManager(api *authapi.Client, st store.Store) *Manager {
	return &Manager{api: api, store: st, state: StateRestoring}
}

// Restore rehydrates the session from the store. A one-sided or corrupt
// stored record counts as absence: both entries are cleared and the
// manager lands unauthenticated. Restore never reports an error.
func (m *Manager) Restore() {
	token, hasToken := m.read(store.KeyToken)
	rawUser, hasUser := m.read(store.KeyUser)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = auth.Session{}
	switch {
	case !hasToken && !hasUser:
		// Nothing stored; first run or post-logout.
	case hasToken != hasUser:
		m.clearStored()
	default:
		var user auth.User
		if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == "" || token == "" {
			m.clearStored()
		} else {
			m.session = auth.Session{User: user, Token: token}
		}
	}

	if m.session.Authenticated() {
		m.state = StateAuthenticated
	} else {
		m.state = StateUnauthenticated
	}
}

// Login exchanges credentials for a session. On success the session is
// persisted and replaces any previous one in full.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	if strings.TrimSpace(email) == "" {
		return failure(msgEmailRequired)
	}
	if password == "" {
		return failure(msgPasswordRequired)
	}

	creds, err := m.api.Login(ctx, email, password)
	if err != nil {
		return failureFrom(err, msgLoginFailed)
	}
	if !m.adopt(creds) {
		return failure(msgLoginFailed)
	}
	return success
}

// RequestOTP asks the auth service to email a one-time passcode for
// registration.
func (m *Manager) RequestOTP(ctx context.Context, email string) Result {
	if strings.TrimSpace(email) == "" {
		return failure(msgEmailRequired)
	}
	if err := m.api.RequestOTP(ctx, email); err != nil {
		return failureFrom(err, msgOTPRequestFailed)
	}
	return success
}

// Register verifies the emailed passcode and, only once verification has
// produced a token, signs the account up. A verification failure
// short-circuits before the signup call with the same Result shape.
// When the signup response omits email or name the locally supplied
// values fill in.
func (m *Manager) Register(ctx context.Context, email, password, name, code string) Result {
	if strings.TrimSpace(email) == "" {
		return failure(msgEmailRequired)
	}
	if password == "" {
		return failure(msgPasswordRequired)
	}
	if strings.TrimSpace(name) == "" {
		return failure(msgNameRequired)
	}
	if strings.TrimSpace(code) == "" {
		return failure(msgCodeRequired)
	}

	verificationToken, err := m.api.VerifyOTP(ctx, email, code)
	if err != nil {
		return failureFrom(err, msgRegisterFailed)
	}

	creds, err := m.api.Signup(ctx, authapi.SignupRequest{
		Email:             email,
		Password:          password,
		Name:              name,
		VerificationToken: verificationToken,
	})
	if err != nil {
		return failureFrom(err, msgRegisterFailed)
	}
	if creds.User.ID == "" {
		return failure(msgRegisterFailed)
	}
	if creds.User.Email == "" {
		creds.User.Email = email
	}
	if creds.User.Name == "" {
		creds.User.Name = name
	}

	// A signup response may omit the token; the account exists but the
	// user still has to log in.
	if creds.Token == "" {
		return success
	}
	m.adopt(creds)
	return success
}

// Logout clears the stored entries and resets to unauthenticated. It is
// idempotent and cannot fail; store removal errors only cost durability.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearStored()
	m.session = auth.Session{}
	m.state = StateUnauthenticated
}

// State reports the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Current returns the authenticated user, with ok=false otherwise.
func (m *Manager) Current() (auth.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.session.Authenticated() {
		return auth.User{}, false
	}
	return m.session.User, true
}

// Token returns the bearer credential, empty when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

// adopt installs and persists a complete credential pair. Incomplete
// pairs are refused so a partial session can never exist.
func (m *Manager) adopt(creds authapi.Credentials) bool {
	session := auth.Session{User: creds.User, Token: creds.Token}
	if !session.Authenticated() {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.persist(session)
	m.session = session
	m.state = StateAuthenticated
	return true
}

// persist writes both entries; a write failure degrades to a memory-only
// session instead of failing the operation.
func (m *Manager) persist(s auth.Session) {
	raw, err := json.Marshal(s.User)
	if err == nil {
		err = m.store.Set(store.KeyUser, string(raw))
	}
	if err == nil {
		err = m.store.Set(store.KeyToken, s.Token)
	}
	if err != nil {
		log.Printf("[session] persist failed, continuing with in-memory session: %v", err)
	}
}

func (m *Manager) clearStored() {
	if err := m.store.Remove(store.KeyToken); err != nil {
		log.Printf("[session] clearing stored token: %v", err)
	}
	if err := m.store.Remove(store.KeyUser); err != nil {
		log.Printf("[session] clearing stored user: %v", err)
	}
}

func (m *Manager) read(key string) (string, bool) {
	value, ok, err := m.store.Get(key)
	if err != nil {
		log.Printf("[session] reading stored %s: %v", key, err)
		return "", false
	}
	return value, ok
}

// failureFrom maps an auth API error onto a user-displayable Result:
// service rejections surface their message (or the fallback when the
// payload had none), anything else reads as a connectivity problem.
func failureFrom(err error, fallback string) Result {
	var apiErr *authapi.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return failure(apiErr.Message)
		}
		return failure(fallback)
	}
	return failure(msgConnectivity)
}
