package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"CREDVAULT_BACK-END/internal/dto"
	"CREDVAULT_BACK-END/internal/store"
	"CREDVAULT_BACK-END/internal/utils"
)

// CredentialsHandler handles read-only credential retrieval requests
type CredentialsHandler struct {
	store store.CredentialStore
}

// NewCredentialsHandler creates a new CredentialsHandler instance
func NewCredentialsHandler(s store.CredentialStore) *CredentialsHandler {
	return &CredentialsHandler{store: s}
}

// List returns all credentials with their joined profiles
// @Summary Get all credentials
// @Description Returns a list of all credentials along with their associated profile data.
// @Tags credentials
// @Produce json
// @Success 200 {array} dto.CredentialResponse "Credentials retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credentials [get]
func (h *CredentialsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	credentials, err := h.store.List(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list credentials", err.Error())
		return
	}

	response := make([]dto.CredentialResponse, 0, len(credentials))
	for _, cred := range credentials {
		response = append(response, dto.NewCredentialResponse(cred))
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// GetByID returns a single credential by its id
// @Summary Get a credential by ID
// @Description Returns a single credential and its profile, if it exists.
// @Tags credentials
// @Produce json
// @Param id path int true "Credential ID"
// @Success 200 {object} dto.CredentialResponse "Credential retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid credential ID"
// @Failure 404 {object} dto.ErrorResponse "Credential not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credentials/{id} [get]
func (h *CredentialsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idPart := strings.TrimPrefix(r.URL.Path, "/api/credentials/")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid credential ID", "ID must be an integer")
		return
	}

	cred, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Credential not found", "No credential has the given ID")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get credential", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewCredentialResponse(*cred))
}
