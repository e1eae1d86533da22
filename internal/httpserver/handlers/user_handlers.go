package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"helpdesk/internal/crud"
)

func CreateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req crud.UserCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(req.Email)
		if req.Username == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "username/email/password required", http.StatusBadRequest)
			return
		}
		if req.Role != "" && !req.Role.Valid() {
			http.Error(w, "invalid role", http.StatusBadRequest)
			return
		}
		u, st, err := crud.CreateUser(db, req)
		if err != nil {
			internalError(w, lg, "create user failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusCreated, u)
	}
}

func GetUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		out, st, err := crud.GetUser(db, id)
		if err != nil {
			internalError(w, lg, "get user failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func ListUsers(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outs, err := crud.ListUsers(db)
		if err != nil {
			internalError(w, lg, "list users failed", err)
			return
		}
		respondJSON(w, http.StatusOK, outs)
	}
}

func UpdateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		var req crud.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Role != nil && !req.Role.Valid() {
			http.Error(w, "invalid role", http.StatusBadRequest)
			return
		}
		u, st, err := crud.UpdateUser(db, id, req)
		if err != nil {
			internalError(w, lg, "update user failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}

func DeleteUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		u, st, err := crud.DeleteUser(db, id)
		if err != nil {
			internalError(w, lg, "delete user failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}

func VerifyUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		password := r.URL.Query().Get("password")
		if username == "" || password == "" {
			http.Error(w, "username/password required", http.StatusBadRequest)
			return
		}
		verified, err := crud.VerifyUser(db, username, password)
		if err != nil {
			internalError(w, lg, "verify user failed", err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"verified": verified})
	}
}
