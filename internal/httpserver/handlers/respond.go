package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"helpdesk/internal/crud"
)

func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// respondStatus maps a crud outcome to an HTTP response: not-found
// codes to 404, uniqueness conflicts to 409, relationship and content
// violations to 422. The body carries the canonical code name.
func respondStatus(w http.ResponseWriter, st crud.Status) {
	respondJSON(w, httpStatus(st), map[string]string{"error": st.String()})
}

func httpStatus(st crud.Status) int {
	switch st {
	case crud.UserNotFound, crud.TicketNotFound, crud.IssuerNotFound, crud.AssigneeNotFound,
		crud.FileNotFound, crud.MessageNotFound, crud.SenderNotFound, crud.ReceiverNotFound:
		return http.StatusNotFound
	case crud.UnameAlreadyExist, crud.EmailAlreadyExist, crud.FileAlreadyExist:
		return http.StatusConflict
	case crud.SameIssuerAndAssignee, crud.SameSenderAndReceiver, crud.ContentIsEmpty:
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

func internalError(w http.ResponseWriter, lg *zap.SugaredLogger, op string, err error) {
	lg.Errorw(op, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// idParam parses the {id} route parameter. ok is false after the 400
// has already been written.
func idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}
