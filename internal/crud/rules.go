package crud

import (
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/models"
)

// Validation predicates shared by the crud operations. All of them hit
// the store; a non-nil error always means the store itself failed.

func userExists(db *gorm.DB, id uint) (bool, error) {
	err := db.Select("id").First(&models.User{}, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func ticketExists(db *gorm.DB, id uint) (bool, error) {
	err := db.Select("id").First(&models.Ticket{}, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// usernameTaken reports whether another user (any row but exceptID)
// already holds the username. Pass exceptID 0 on create.
func usernameTaken(db *gorm.DB, username string, exceptID uint) (bool, error) {
	var n int64
	err := db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, exceptID).
		Count(&n).Error
	return n > 0, err
}

func emailTaken(db *gorm.DB, email string, exceptID uint) (bool, error) {
	var n int64
	err := db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&n).Error
	return n > 0, err
}

// attachmentTaken reports whether the ticket already carries an
// attachment with the same (filename, filetype) pair.
func attachmentTaken(db *gorm.DB, ticketID uint, filename, filetype string, exceptID uint) (bool, error) {
	var n int64
	err := db.Model(&models.Attachment{}).
		Where("ticket_id = ? AND filename = ? AND filetype = ? AND id <> ?", ticketID, filename, filetype, exceptID).
		Count(&n).Error
	return n > 0, err
}
