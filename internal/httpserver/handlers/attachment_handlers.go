package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"helpdesk/internal/crud"
)

func CreateAttachment(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req crud.AttachmentCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Filename = strings.TrimSpace(req.Filename)
		req.Filetype = strings.TrimSpace(req.Filetype)
		if req.TicketID == 0 || req.Filename == "" || req.Filetype == "" {
			http.Error(w, "ticket_id/filename/filetype required", http.StatusBadRequest)
			return
		}
		if req.Filesize < 0 {
			http.Error(w, "filesize must not be negative", http.StatusBadRequest)
			return
		}
		a, st, err := crud.CreateAttachment(db, req)
		if err != nil {
			internalError(w, lg, "create attachment failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusCreated, a)
	}
}

func GetAttachment(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		out, st, err := crud.GetAttachment(db, id)
		if err != nil {
			internalError(w, lg, "get attachment failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func UpdateAttachment(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		var req crud.AttachmentUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a, st, err := crud.UpdateAttachment(db, id, req)
		if err != nil {
			internalError(w, lg, "update attachment failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, a)
	}
}

func DeleteAttachment(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		a, st, err := crud.DeleteAttachment(db, id)
		if err != nil {
			internalError(w, lg, "delete attachment failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, a)
	}
}
