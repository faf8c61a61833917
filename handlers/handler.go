package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"task-tracker/db"
	"task-tracker/middlewares"
	"task-tracker/utils"
)

// Handler adapts HTTP requests onto a Store.
type Handler struct {
	store *db.Store
}

func New(store *db.Store) *Handler {
	return &Handler{store: store}
}

// Register mounts the user and task routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", Home).Methods("GET")

	r.Handle("/users", middlewares.RequireJSON(h.CreateUser)).Methods("POST")
	r.Handle("/users/{userId}/tasks", middlewares.RequireJSON(h.CreateTask)).Methods("POST")
	r.HandleFunc("/users/{userId}/tasks", h.GetTasks).Methods("GET")
	r.HandleFunc("/users/{userId}/tasks/{taskId}", h.GetTask).Methods("GET")
	r.Handle("/users/{userId}/tasks/{taskId}", middlewares.RequireJSON(h.UpdateTask)).Methods("PUT")
	r.HandleFunc("/users/{userId}/tasks/{taskId}", h.DeleteTask).Methods("DELETE")
}

func Home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Welcome to the Task Tracker API")
}

// pathID parses a UUID path variable. Malformed ids are reported as 404,
// since no resource can live at that path.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, fmt.Sprintf("Invalid id %q", raw))
		return uuid.Nil, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrUserNotFound) || errors.Is(err, db.ErrTaskNotFound) {
		utils.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	log.Printf("store error: %v", err)
	utils.WriteError(w, http.StatusInternalServerError, "Internal error")
}
