package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"helpdesk/internal/httpserver/handlers"
)

func NewRouter(db *gorm.DB, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP, middleware.Recoverer, requestLogger(lg))

	r.Get("/v1/users/verify", handlers.VerifyUser(db, lg))
	r.Post("/v1/users", handlers.CreateUser(db, lg))
	r.Get("/v1/users", handlers.ListUsers(db, lg))
	r.Get("/v1/users/{id}", handlers.GetUser(db, lg))
	r.Patch("/v1/users/{id}", handlers.UpdateUser(db, lg))
	r.Delete("/v1/users/{id}", handlers.DeleteUser(db, lg))

	r.Post("/v1/tickets", handlers.CreateTicket(db, lg))
	r.Get("/v1/tickets", handlers.ListTickets(db, lg))
	r.Get("/v1/tickets/{id}", handlers.GetTicket(db, lg))
	r.Patch("/v1/tickets/{id}", handlers.UpdateTicket(db, lg))
	r.Delete("/v1/tickets/{id}", handlers.DeleteTicket(db, lg))
	r.Get("/v1/tickets/{id}/attachments", handlers.ListTicketAttachments(db, lg))
	r.Get("/v1/tickets/{id}/messages", handlers.ListTicketMessages(db, lg))

	r.Post("/v1/attachments", handlers.CreateAttachment(db, lg))
	r.Get("/v1/attachments/{id}", handlers.GetAttachment(db, lg))
	r.Patch("/v1/attachments/{id}", handlers.UpdateAttachment(db, lg))
	r.Delete("/v1/attachments/{id}", handlers.DeleteAttachment(db, lg))

	r.Post("/v1/messages", handlers.CreateMessage(db, lg))
	r.Get("/v1/messages/{id}", handlers.GetMessage(db, lg))
	r.Patch("/v1/messages/{id}", handlers.UpdateMessage(db, lg))
	r.Delete("/v1/messages/{id}", handlers.DeleteMessage(db, lg))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
