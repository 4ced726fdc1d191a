package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/secureconnect/internal/common"
	"github.com/dmitrijs2005/secureconnect/internal/server/services"
)

// Response message texts are part of the contract with the web client and
// must not be reworded.
const (
	msgFieldsRequired     = "Username and password are required"
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameExists     = "Username already exists"
	msgUserCreated        = "User created successfully"
	msgLoginError         = "An error occurred during login"
	msgSignupError        = "An error occurred during signup"
	msgCheckUsernameError = "An error occurred while checking username"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type signupErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type checkUsernameRequest struct {
	Username string `json:"username"`
}

type checkUsernameResponse struct {
	Exists bool `json:"exists"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeCredentials parses the request body. A malformed body is reported
// the same way as absent fields, matching the original endpoint behavior.
func decodeCredentials(r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, false
	}
	return req, true
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := decodeCredentials(r)
	if !ok || req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgFieldsRequired})
		return
	}

	result, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgFieldsRequired})
		case errors.Is(err, common.ErrorUnauthorized):
			// deliberately identical for unknown user and wrong password
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: msgInvalidCredentials})
		default:
			s.logger.Error(ctx, "login failed", "error", err.Error())
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msgLoginError})
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: result.Token, Username: result.Username})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := decodeCredentials(r)
	if !ok || req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgFieldsRequired})
		return
	}

	if err := s.users.SignUp(ctx, req.Username, req.Password); err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			fields := map[string]string{}
			if ve.Username != "" {
				fields["username"] = ve.Username
			}
			if ve.Password != "" {
				fields["password"] = ve.Password
			}
			writeJSON(w, http.StatusBadRequest, signupErrorResponse{Message: ve.FirstMessage(), Errors: fields})
		case errors.Is(err, common.ErrorAlreadyExists):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgUsernameExists})
		default:
			s.logger.Error(ctx, "signup failed", "error", err.Error())
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msgSignupError})
		}
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: msgUserCreated})
}

func (s *Server) handleCheckUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgFieldsRequired})
		return
	}

	exists, err := s.users.CheckUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error(ctx, "username check failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msgCheckUsernameError})
		return
	}

	writeJSON(w, http.StatusOK, checkUsernameResponse{Exists: exists})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
