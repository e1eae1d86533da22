package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(16);not null;default:client" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Ticket struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	IssuerID    uint            `gorm:"index;not null" json:"issuer_id"`
	AssigneeID  *uint           `gorm:"index" json:"assignee_id,omitempty"`
	Title       string          `gorm:"not null;index" json:"title"`
	Status      TicketStatus    `gorm:"type:varchar(16);not null;default:open" json:"status"`
	Category    *TicketCategory `gorm:"type:varchar(16)" json:"category,omitempty"`
	Description string          `gorm:"not null" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Attachment struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID   uint      `gorm:"not null;uniqueIndex:uidx_ticket_file" json:"ticket_id"`
	Filename   string    `gorm:"not null;uniqueIndex:uidx_ticket_file" json:"filename"`
	Filetype   string    `gorm:"not null;uniqueIndex:uidx_ticket_file" json:"filetype"`
	Filesize   int64     `gorm:"not null" json:"filesize"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Message struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID   uint      `gorm:"index;not null" json:"ticket_id"`
	SenderID   uint      `gorm:"index;not null" json:"sender_id"`
	ReceiverID uint      `gorm:"index;not null" json:"receiver_id"`
	Content    string    `gorm:"not null" json:"content"`
	SentAt     time.Time `gorm:"autoCreateTime" json:"sent_at"`
	EditedAt   time.Time `gorm:"autoUpdateTime" json:"edited_at"`
}
