package crud

import (
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/models"
)

// CreateMessage rejects empty content before touching the store, then
// validates ticket, sender and receiver in that order, then rejects a
// message a user would send to themselves.
func CreateMessage(db *gorm.DB, in MessageCreate) (*models.Message, Status, error) {
	if in.Content == "" {
		return nil, ContentIsEmpty, nil
	}
	st := Success
	var m models.Message
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := ticketExists(tx, in.TicketID)
		if err != nil {
			return err
		}
		if !ok {
			st = TicketNotFound
			return nil
		}
		ok, err = userExists(tx, in.SenderID)
		if err != nil {
			return err
		}
		if !ok {
			st = SenderNotFound
			return nil
		}
		ok, err = userExists(tx, in.ReceiverID)
		if err != nil {
			return err
		}
		if !ok {
			st = ReceiverNotFound
			return nil
		}
		if in.SenderID == in.ReceiverID {
			st = SameSenderAndReceiver
			return nil
		}
		m = models.Message{
			TicketID:   in.TicketID,
			SenderID:   in.SenderID,
			ReceiverID: in.ReceiverID,
			Content:    in.Content,
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &m, Success, nil
}

// GetMessage hydrates the ticket, sender and receiver references, each
// with its own not-found code if the referenced row vanished.
func GetMessage(db *gorm.DB, id uint) (*MessageOut, Status, error) {
	var m models.Message
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, MessageNotFound, nil
		}
		return nil, MessageNotFound, err
	}
	var t models.Ticket
	if err := db.First(&t, "id = ?", m.TicketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TicketNotFound, nil
		}
		return nil, TicketNotFound, err
	}
	var sender models.User
	if err := db.First(&sender, "id = ?", m.SenderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, SenderNotFound, nil
		}
		return nil, SenderNotFound, err
	}
	var receiver models.User
	if err := db.First(&receiver, "id = ?", m.ReceiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ReceiverNotFound, nil
		}
		return nil, ReceiverNotFound, err
	}
	return &MessageOut{
		ID:       m.ID,
		Ticket:   TicketRef{ID: t.ID, Title: t.Title},
		Sender:   UserRef{ID: sender.ID, Username: sender.Username},
		Receiver: UserRef{ID: receiver.ID, Username: receiver.Username},
		Content:  m.Content,
		SentAt:   m.SentAt,
		EditedAt: m.EditedAt,
	}, Success, nil
}

// ListTicketMessages returns the correspondence of one ticket in send
// order.
func ListTicketMessages(db *gorm.DB, ticketID uint) ([]models.Message, Status, error) {
	ok, err := ticketExists(db, ticketID)
	if err != nil {
		return nil, TicketNotFound, err
	}
	if !ok {
		return nil, TicketNotFound, nil
	}
	var messages []models.Message
	if err := db.Order("sent_at asc").Find(&messages, "ticket_id = ?", ticketID).Error; err != nil {
		return nil, TicketNotFound, err
	}
	return messages, Success, nil
}

// UpdateMessage re-validates any supplied foreign key and re-derives
// the sender/receiver distinctness from the resulting pair, so setting
// only the receiver to the stored sender (or the other way round) is
// caught too.
func UpdateMessage(db *gorm.DB, id uint, in MessageUpdate) (*models.Message, Status, error) {
	st := Success
	var m models.Message
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = MessageNotFound
				return nil
			}
			return err
		}
		if in.Content != nil && *in.Content == "" {
			st = ContentIsEmpty
			return nil
		}
		if in.TicketID != nil {
			ok, err := ticketExists(tx, *in.TicketID)
			if err != nil {
				return err
			}
			if !ok {
				st = TicketNotFound
				return nil
			}
		}
		if in.SenderID != nil {
			ok, err := userExists(tx, *in.SenderID)
			if err != nil {
				return err
			}
			if !ok {
				st = SenderNotFound
				return nil
			}
		}
		if in.ReceiverID != nil {
			ok, err := userExists(tx, *in.ReceiverID)
			if err != nil {
				return err
			}
			if !ok {
				st = ReceiverNotFound
				return nil
			}
		}
		sender := m.SenderID
		if in.SenderID != nil {
			sender = *in.SenderID
		}
		receiver := m.ReceiverID
		if in.ReceiverID != nil {
			receiver = *in.ReceiverID
		}
		if sender == receiver {
			st = SameSenderAndReceiver
			return nil
		}
		m.SenderID = sender
		m.ReceiverID = receiver
		if in.TicketID != nil {
			m.TicketID = *in.TicketID
		}
		if in.Content != nil {
			m.Content = *in.Content
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &m, Success, nil
}

func DeleteMessage(db *gorm.DB, id uint) (*models.Message, Status, error) {
	st := Success
	var m models.Message
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = MessageNotFound
				return nil
			}
			return err
		}
		return tx.Delete(&models.Message{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &m, Success, nil
}
