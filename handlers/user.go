package handlers

import (
	"net/http"

	"task-tracker/utils"
)

type createUserRequest struct {
	Name *string `json:"name"`
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      createUserRequest  true  "User to create"
// @Success      200   {string}  string  "User id"
// @Failure      400   {object}  utils.ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == nil {
		utils.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	id := h.store.CreateUser(*req.Name)
	utils.WriteJSON(w, http.StatusOK, id)
}
