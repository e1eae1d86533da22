package crud

import (
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/models"
)

// CreateAttachment validates the ticket and rejects a duplicate
// (filename, filetype) pair on the same ticket.
func CreateAttachment(db *gorm.DB, in AttachmentCreate) (*models.Attachment, Status, error) {
	st := Success
	var a models.Attachment
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := ticketExists(tx, in.TicketID)
		if err != nil {
			return err
		}
		if !ok {
			st = TicketNotFound
			return nil
		}
		taken, err := attachmentTaken(tx, in.TicketID, in.Filename, in.Filetype, 0)
		if err != nil {
			return err
		}
		if taken {
			st = FileAlreadyExist
			return nil
		}
		a = models.Attachment{
			TicketID: in.TicketID,
			Filename: in.Filename,
			Filetype: in.Filetype,
			Filesize: in.Filesize,
		}
		return tx.Create(&a).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &a, Success, nil
}

func GetAttachment(db *gorm.DB, id uint) (*AttachmentOut, Status, error) {
	var a models.Attachment
	if err := db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FileNotFound, nil
		}
		return nil, FileNotFound, err
	}
	var t models.Ticket
	if err := db.First(&t, "id = ?", a.TicketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TicketNotFound, nil
		}
		return nil, TicketNotFound, err
	}
	return &AttachmentOut{
		ID:         a.ID,
		Ticket:     TicketRef{ID: t.ID, Title: t.Title},
		Filename:   a.Filename,
		Filetype:   a.Filetype,
		Filesize:   a.Filesize,
		UploadedAt: a.UploadedAt,
		UpdatedAt:  a.UpdatedAt,
	}, Success, nil
}

// ListTicketAttachments returns the attachments of one ticket, newest
// first.
func ListTicketAttachments(db *gorm.DB, ticketID uint) ([]models.Attachment, Status, error) {
	ok, err := ticketExists(db, ticketID)
	if err != nil {
		return nil, TicketNotFound, err
	}
	if !ok {
		return nil, TicketNotFound, nil
	}
	var attachments []models.Attachment
	if err := db.Order("uploaded_at desc").Find(&attachments, "ticket_id = ?", ticketID).Error; err != nil {
		return nil, TicketNotFound, err
	}
	return attachments, Success, nil
}

// UpdateAttachment applies only the supplied fields; a changed
// ticket_id is re-validated against the store first.
func UpdateAttachment(db *gorm.DB, id uint, in AttachmentUpdate) (*models.Attachment, Status, error) {
	st := Success
	var a models.Attachment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = FileNotFound
				return nil
			}
			return err
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
			a.TicketID = *in.TicketID
		}
		if in.Filename != nil {
			a.Filename = *in.Filename
		}
		if in.Filetype != nil {
			a.Filetype = *in.Filetype
		}
		if in.Filesize != nil {
			a.Filesize = *in.Filesize
		}
		return tx.Save(&a).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &a, Success, nil
}

func DeleteAttachment(db *gorm.DB, id uint) (*models.Attachment, Status, error) {
	st := Success
	var a models.Attachment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = FileNotFound
				return nil
			}
			return err
		}
		return tx.Delete(&models.Attachment{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &a, Success, nil
}
