package crud

import (
	"bytes"
	"encoding/json"
	"time"

	"helpdesk/internal/models"
)

// Optional distinguishes a field that was omitted from a PATCH payload
// from one explicitly set to null. Omitted fields leave the stored
// column untouched; an explicit null clears a nullable column.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// UserRef is the reference projection of a user embedded in output views.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// TicketRef is the reference projection of a ticket embedded in output views.
type TicketRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type UserCreate struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type UserUpdate struct {
	Username *string          `json:"username"`
	Email    *string          `json:"email"`
	Password *string          `json:"password"`
	Role     *models.UserRole `json:"role"`
}

// UserOut is the read view of a user. It never carries the password hash.
type UserOut struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type TicketCreate struct {
	IssuerID    uint                   `json:"issuer_id"`
	AssigneeID  *uint                  `json:"assignee_id"`
	Title       string                 `json:"title"`
	Status      models.TicketStatus    `json:"status"`
	Category    *models.TicketCategory `json:"category"`
	Description string                 `json:"description"`
}

type TicketUpdate struct {
	IssuerID    *uint                           `json:"issuer_id"`
	AssigneeID  Optional[uint]                  `json:"assignee_id"`
	Title       *string                         `json:"title"`
	Status      *models.TicketStatus            `json:"status"`
	Category    Optional[models.TicketCategory] `json:"category"`
	Description *string                         `json:"description"`
}

// TicketOut substitutes the issuer/assignee foreign keys with user
// references. A missing assignee is simply omitted.
type TicketOut struct {
	ID          uint                   `json:"id"`
	Issuer      *UserRef               `json:"issuer"`
	Assignee    *UserRef               `json:"assignee,omitempty"`
	Title       string                 `json:"title"`
	Status      models.TicketStatus    `json:"status"`
	Category    *models.TicketCategory `json:"category,omitempty"`
	Description string                 `json:"description"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type AttachmentCreate struct {
	TicketID uint   `json:"ticket_id"`
	Filename string `json:"filename"`
	Filetype string `json:"filetype"`
	Filesize int64  `json:"filesize"`
}

type AttachmentUpdate struct {
	TicketID *uint   `json:"ticket_id"`
	Filename *string `json:"filename"`
	Filetype *string `json:"filetype"`
	Filesize *int64  `json:"filesize"`
}

type AttachmentOut struct {
	ID         uint      `json:"id"`
	Ticket     TicketRef `json:"ticket"`
	Filename   string    `json:"filename"`
	Filetype   string    `json:"filetype"`
	Filesize   int64     `json:"filesize"`
	UploadedAt time.Time `json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MessageCreate struct {
	TicketID   uint   `json:"ticket_id"`
	SenderID   uint   `json:"sender_id"`
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

type MessageUpdate struct {
	TicketID   *uint   `json:"ticket_id"`
	SenderID   *uint   `json:"sender_id"`
	ReceiverID *uint   `json:"receiver_id"`
	Content    *string `json:"content"`
}

type MessageOut struct {
	ID       uint      `json:"id"`
	Ticket   TicketRef `json:"ticket"`
	Sender   UserRef   `json:"sender"`
	Receiver UserRef   `json:"receiver"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
	EditedAt time.Time `json:"edited_at"`
}
