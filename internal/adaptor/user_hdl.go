package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful", user)
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUser handles GET /users/{username}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	user, err := h.service.GetUser(r.Context(), username)
	if err != nil {
		respondError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// UpdateUser handles PUT /users/{username}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}
	if !requireSelf(w, r, username) {
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), username, &req)
	if err != nil {
		respondError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeleteUser handles DELETE /users/{username}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}
	if !requireSelf(w, r, username) {
		return
	}

	if err := h.service.DeleteUser(r.Context(), username); err != nil {
		// Deleting an absent user is an explicit client error, with the
		// username echoed back in the message.
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseBadRequest(w, fmt.Sprintf("%s was not found", username), nil)
			return
		}
		respondError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("%s was deleted", username), nil)
}
