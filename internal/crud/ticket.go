package crud

import (
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/models"
)

// CreateTicket validates the issuer, then the assignee when one is
// given, then rejects a ticket whose issuer and assignee are the same
// user. Status defaults to open when unset.
func CreateTicket(db *gorm.DB, in TicketCreate) (*models.Ticket, Status, error) {
	st := Success
	var t models.Ticket
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, in.IssuerID)
		if err != nil {
			return err
		}
		if !ok {
			st = IssuerNotFound
			return nil
		}
		if in.AssigneeID != nil {
			ok, err := userExists(tx, *in.AssigneeID)
			if err != nil {
				return err
			}
			if !ok {
				st = AssigneeNotFound
				return nil
			}
		}
		if in.AssigneeID != nil && *in.AssigneeID == in.IssuerID {
			st = SameIssuerAndAssignee
			return nil
		}
		status := in.Status
		if status == "" {
			status = models.StatusOpen
		}
		t = models.Ticket{
			IssuerID:    in.IssuerID,
			AssigneeID:  in.AssigneeID,
			Title:       in.Title,
			Status:      status,
			Category:    in.Category,
			Description: in.Description,
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &t, Success, nil
}

// GetTicket hydrates the issuer reference (a vanished issuer is an
// error, the foreign key should have prevented it) and the assignee
// reference best-effort: a missing assignee is dropped from the view.
func GetTicket(db *gorm.DB, id uint) (*TicketOut, Status, error) {
	var t models.Ticket
	if err := db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TicketNotFound, nil
		}
		return nil, TicketNotFound, err
	}
	out, st, err := ticketOut(db, t)
	if err != nil || st != Success {
		return nil, st, err
	}
	return out, Success, nil
}

type TicketFilter struct {
	Status   *models.TicketStatus
	Category *models.TicketCategory
	IssuerID *uint
}

func ListTickets(db *gorm.DB, f TicketFilter) ([]models.Ticket, error) {
	q := db.Order("created_at desc")
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.IssuerID != nil {
		q = q.Where("issuer_id = ?", *f.IssuerID)
	}
	var tickets []models.Ticket
	if err := q.Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateTicket re-validates any supplied issuer/assignee and then
// checks distinctness against the resulting pair: the supplied value
// when present, the stored one otherwise. Changing only the assignee
// to match the stored issuer is still a violation.
func UpdateTicket(db *gorm.DB, id uint, in TicketUpdate) (*models.Ticket, Status, error) {
	st := Success
	var t models.Ticket
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = TicketNotFound
				return nil
			}
			return err
		}
		if in.IssuerID != nil {
			ok, err := userExists(tx, *in.IssuerID)
			if err != nil {
				return err
			}
			if !ok {
				st = IssuerNotFound
				return nil
			}
		}
		if in.AssigneeID.Set && in.AssigneeID.Value != nil {
			ok, err := userExists(tx, *in.AssigneeID.Value)
			if err != nil {
				return err
			}
			if !ok {
				st = AssigneeNotFound
				return nil
			}
		}
		issuer := t.IssuerID
		if in.IssuerID != nil {
			issuer = *in.IssuerID
		}
		assignee := t.AssigneeID
		if in.AssigneeID.Set {
			assignee = in.AssigneeID.Value
		}
		if assignee != nil && *assignee == issuer {
			st = SameIssuerAndAssignee
			return nil
		}
		t.IssuerID = issuer
		t.AssigneeID = assignee
		if in.Title != nil {
			t.Title = *in.Title
		}
		if in.Status != nil {
			t.Status = *in.Status
		}
		if in.Category.Set {
			t.Category = in.Category.Value
		}
		if in.Description != nil {
			t.Description = *in.Description
		}
		return tx.Save(&t).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &t, Success, nil
}

// DeleteTicket removes the ticket and everything it owns: its
// attachments and messages go in the same transaction.
func DeleteTicket(db *gorm.DB, id uint) (*models.Ticket, Status, error) {
	st := Success
	var t models.Ticket
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = TicketNotFound
				return nil
			}
			return err
		}
		if err := tx.Delete(&models.Attachment{}, "ticket_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Message{}, "ticket_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ticket{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &t, Success, nil
}

func ticketOut(db *gorm.DB, t models.Ticket) (*TicketOut, Status, error) {
	var issuer models.User
	if err := db.First(&issuer, "id = ?", t.IssuerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, IssuerNotFound, nil
		}
		return nil, IssuerNotFound, err
	}
	out := TicketOut{
		ID:          t.ID,
		Issuer:      &UserRef{ID: issuer.ID, Username: issuer.Username},
		Title:       t.Title,
		Status:      t.Status,
		Category:    t.Category,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AssigneeID != nil {
		var assignee models.User
		err := db.First(&assignee, "id = ?", *t.AssigneeID).Error
		switch {
		case err == nil:
			out.Assignee = &UserRef{ID: assignee.ID, Username: assignee.Username}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// tolerated: the reference is omitted from the view
		default:
			return nil, Success, err
		}
	}
	return &out, Success, nil
}
