// Package auth serves the development stub of the remote auth service.
package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seojinpark/talktemplate/client/internal/service/account"
	"github.com/seojinpark/talktemplate/client/pkg/utils"
)

// Handler exposes the four auth endpoints over HTTP.
type Handler struct {
	accounts *account.Service
}

// New creates the auth handler.
func New(accounts *account.Service) *Handler {
	return &Handler{accounts: accounts}
}

// RegisterRoutes mounts the endpoints; the router nests them under
// /api/auth.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
	r.Post("/signup", h.handleSignup)
	r.Post("/email/otp/request", h.handleOTPRequest)
	r.Post("/email/otp/verify", h.handleOTPVerify)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "이메일과 비밀번호를 입력해주세요.")
		return
	}

	identity, token, err := h.accounts.Login(payload.Email, payload.Password)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "잘못된 비밀번호입니다.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"user":  identity,
		"token": token,
	})
}

func (h *Handler) handleOTPRequest(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, "이메일을 입력해주세요.")
		return
	}

	code, err := h.accounts.RequestOTP(payload.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "인증번호 발송에 실패했습니다.")
		return
	}

	// No mail transport in the stub; the operator reads the code here.
	log.Printf("[authstub] passcode for %s: %s", payload.Email, code)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (h *Handler) handleOTPVerify(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" || payload.Code == "" {
		utils.RespondError(w, http.StatusBadRequest, "이메일과 인증번호를 입력해주세요.")
		return
	}

	token, err := h.accounts.VerifyOTP(payload.Email, payload.Code)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "인증번호가 올바르지 않습니다.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"data": map[string]string{"verificationToken": token},
	})
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email             string `json:"email"`
		Password          string `json:"password"`
		Name              string `json:"name"`
		VerificationToken string `json:"emailVerificationToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "가입 정보를 모두 입력해주세요.")
		return
	}

	identity, token, err := h.accounts.Signup(payload.Email, payload.Password, payload.Name, payload.VerificationToken)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrEmailTaken):
			utils.RespondError(w, http.StatusConflict, "이미 가입된 이메일입니다.")
		case errors.Is(err, account.ErrInvalidVerification):
			utils.RespondError(w, http.StatusBadRequest, "이메일 인증이 만료되었습니다. 다시 시도해주세요.")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "회원가입에 실패했습니다.")
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"id":    identity.ID,
		"email": identity.Email,
		"name":  identity.Name,
		"token": token,
	})
}
