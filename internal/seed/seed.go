package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"helpdesk/internal/crud"
)

// Dataset is the JSON bootstrap format: one document with an array per
// entity. Rows are inserted in dependency order through the crud layer
// so every seeded row passes the same validation as API input.
type Dataset struct {
	Users       []crud.UserCreate       `json:"users"`
	Tickets     []crud.TicketCreate     `json:"tickets"`
	Attachments []crud.AttachmentCreate `json:"attachments"`
	Messages    []crud.MessageCreate    `json:"messages"`
}

// Load reads a dataset file and inserts its rows. Rows rejected by the
// crud layer are logged and skipped; the load keeps going.
func Load(db *gorm.DB, lg *zap.SugaredLogger, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	var loaded, skipped int
	for _, in := range ds.Users {
		if _, st, err := crud.CreateUser(db, in); err != nil {
			return err
		} else if st != crud.Success {
			lg.Warnw("seed user skipped", "username", in.Username, "status", st.String())
			skipped++
		} else {
			loaded++
		}
	}
	for _, in := range ds.Tickets {
		if _, st, err := crud.CreateTicket(db, in); err != nil {
			return err
		} else if st != crud.Success {
			lg.Warnw("seed ticket skipped", "title", in.Title, "status", st.String())
			skipped++
		} else {
			loaded++
		}
	}
	for _, in := range ds.Attachments {
		if _, st, err := crud.CreateAttachment(db, in); err != nil {
			return err
		} else if st != crud.Success {
			lg.Warnw("seed attachment skipped", "filename", in.Filename, "status", st.String())
			skipped++
		} else {
			loaded++
		}
	}
	for _, in := range ds.Messages {
		if _, st, err := crud.CreateMessage(db, in); err != nil {
			return err
		} else if st != crud.Success {
			lg.Warnw("seed message skipped", "ticket_id", in.TicketID, "status", st.String())
			skipped++
		} else {
			loaded++
		}
	}
	lg.Infow("seed dataset loaded", "path", path, "loaded", loaded, "skipped", skipped)
	return nil
}
