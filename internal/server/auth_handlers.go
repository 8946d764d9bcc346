package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ventoryhq/ventory/internal/auth"
	"github.com/ventoryhq/ventory/internal/metrics"
	"github.com/ventoryhq/ventory/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registerResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// handleLogin authenticates the caller and issues a bearer token carrying the
// email claim. In open mode the submitted email is trusted as-is; in password
// mode the credential is verified first. Credential failures use the same 403
// the access guard uses, so clients see one status for every auth problem.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		s.logger.Warn("login failed", "email", req.Email, "error", err)
		if errors.Is(err, auth.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusForbidden, auth.ErrInvalidCredentials.Error())
		return
	}

	token, err := s.jwtManager.Generate(user.Email)
	if err != nil {
		s.logger.Error("failed to generate token", "email", user.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	metrics.TokensIssuedTotal.Inc()
	s.logger.Info("token issued", "email", user.Email)
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleRegister creates an account and logs it in. Only available in
// password mode; the open authenticator has no accounts to create.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := s.authenticator.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.logger.Warn("registration failed", "email", req.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrRegistrationNotEnabled):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	token, err := s.jwtManager.Generate(user.Email)
	if err != nil {
		s.logger.Error("failed to generate token", "email", user.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	metrics.TokensIssuedTotal.Inc()
	s.logger.Info("user registered", "email", user.Email)
	writeJSON(w, http.StatusCreated, registerResponse{User: user, Token: token})
}
