package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"helpdesk/internal/crud"
	"helpdesk/internal/models"
)

func CreateTicket(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req crud.TicketCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			http.Error(w, "title required", http.StatusBadRequest)
			return
		}
		if req.IssuerID == 0 {
			http.Error(w, "issuer_id required", http.StatusBadRequest)
			return
		}
		if req.Status != "" && !req.Status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		if req.Category != nil && !req.Category.Valid() {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		t, st, err := crud.CreateTicket(db, req)
		if err != nil {
			internalError(w, lg, "create ticket failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusCreated, t)
	}
}

func GetTicket(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		out, st, err := crud.GetTicket(db, id)
		if err != nil {
			internalError(w, lg, "get ticket failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func ListTickets(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f crud.TicketFilter
		if s := r.URL.Query().Get("status"); s != "" {
			status := models.TicketStatus(s)
			if !status.Valid() {
				http.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			f.Status = &status
		}
		if c := r.URL.Query().Get("category"); c != "" {
			category := models.TicketCategory(c)
			if !category.Valid() {
				http.Error(w, "invalid category", http.StatusBadRequest)
				return
			}
			f.Category = &category
		}
		if raw := r.URL.Query().Get("issuer_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				http.Error(w, "invalid issuer_id", http.StatusBadRequest)
				return
			}
			issuerID := uint(id)
			f.IssuerID = &issuerID
		}
		tickets, err := crud.ListTickets(db, f)
		if err != nil {
			internalError(w, lg, "list tickets failed", err)
			return
		}
		respondJSON(w, http.StatusOK, tickets)
	}
}

func UpdateTicket(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		var req crud.TicketUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Status != nil && !req.Status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		if req.Category.Set && req.Category.Value != nil && !req.Category.Value.Valid() {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		t, st, err := crud.UpdateTicket(db, id, req)
		if err != nil {
			internalError(w, lg, "update ticket failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func DeleteTicket(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		t, st, err := crud.DeleteTicket(db, id)
		if err != nil {
			internalError(w, lg, "delete ticket failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func ListTicketAttachments(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		attachments, st, err := crud.ListTicketAttachments(db, id)
		if err != nil {
			internalError(w, lg, "list ticket attachments failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, attachments)
	}
}

func ListTicketMessages(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		messages, st, err := crud.ListTicketMessages(db, id)
		if err != nil {
			internalError(w, lg, "list ticket messages failed", err)
			return
		}
		if st != crud.Success {
			respondStatus(w, st)
			return
		}
		respondJSON(w, http.StatusOK, messages)
	}
}
