package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"helpdesk/internal/crud"
)

func CreateMessage(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req crud.MessageCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.TicketID == 0 || req.SenderID == 0 || req.ReceiverID == 0 {
			http.Error(w, "ticket_id/sender_id/receiver_id required", http.StatusBadRequest)
			return
		}
		m, st, err := crud.CreateMessage(db, req)
		if err != nil {
			internalError(w, lg, "create message failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusCreated, m)
	}
}

func GetMessage(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		out, st, err := crud.GetMessage(db, id)
		if err != nil {
			internalError(w, lg, "get message failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func UpdateMessage(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		var req crud.MessageUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m, st, err := crud.UpdateMessage(db, id, req)
		if err != nil {
			internalError(w, lg, "update message failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}

func DeleteMessage(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		m, st, err := crud.DeleteMessage(db, id)
		if err != nil {
			internalError(w, lg, "delete message failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}
