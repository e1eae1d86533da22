package crud

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Ticket{}, &models.Attachment{}, &models.Message{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()
	u, st, err := CreateUser(db, UserCreate{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	return u
}

func createTestTicket(t *testing.T, db *gorm.DB, issuerID uint, assigneeID *uint) *models.Ticket {
	t.Helper()
	tk, st, err := CreateTicket(db, TicketCreate{
		IssuerID:    issuerID,
		AssigneeID:  assigneeID,
		Title:       "printer is on fire",
		Description: "it started smoking during the morning standup",
	})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	return tk
}

func createTestMessage(t *testing.T, db *gorm.DB, ticketID, senderID, receiverID uint, content string) *models.Message {
	t.Helper()
	m, st, err := CreateMessage(db, MessageCreate{
		TicketID:   ticketID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	return m
}

func createTestAttachment(t *testing.T, db *gorm.DB, ticketID uint, filename, filetype string) *models.Attachment {
	t.Helper()
	a, st, err := CreateAttachment(db, AttachmentCreate{
		TicketID: ticketID,
		Filename: filename,
		Filetype: filetype,
		Filesize: 2048,
	})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	return a
}

func ptr[T any](v T) *T { return &v }
