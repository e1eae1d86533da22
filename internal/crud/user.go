package crud

import (
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/auth"
	"helpdesk/internal/models"
)

// CreateUser checks username uniqueness before email uniqueness (the
// username violation wins when both collide), hashes the plaintext
// password and persists the row. The plaintext is never stored.
func CreateUser(db *gorm.DB, in UserCreate) (*models.User, Status, error) {
	st := Success
	var u models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := usernameTaken(tx, in.Username, 0)
		if err != nil {
			return err
		}
		if taken {
			st = UnameAlreadyExist
			return nil
		}
		taken, err = emailTaken(tx, in.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			st = EmailAlreadyExist
			return nil
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return err
		}
		role := in.Role
		if role == "" {
			role = models.RoleClient
		}
		u = models.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         role,
		}
		return tx.Create(&u).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &u, Success, nil
}

func GetUser(db *gorm.DB, id uint) (*UserOut, Status, error) {
	var u models.User
	if err := db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, UserNotFound, nil
		}
		return nil, UserNotFound, err
	}
	out := userOut(u)
	return &out, Success, nil
}

func ListUsers(db *gorm.DB) ([]UserOut, error) {
	var users []models.User
	if err := db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	outs := make([]UserOut, 0, len(users))
	for _, u := range users {
		outs = append(outs, userOut(u))
	}
	return outs, nil
}

// UpdateUser applies only the fields present in the payload. A changed
// username or email is re-checked for uniqueness against other rows, so
// re-submitting the current value is not a conflict.
func UpdateUser(db *gorm.DB, id uint, in UserUpdate) (*models.User, Status, error) {
	st := Success
	var u models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = UserNotFound
				return nil
			}
			return err
		}
		if in.Username != nil {
			taken, err := usernameTaken(tx, *in.Username, u.ID)
			if err != nil {
				return err
			}
			if taken {
				st = UnameAlreadyExist
				return nil
			}
		}
		if in.Email != nil {
			taken, err := emailTaken(tx, *in.Email, u.ID)
			if err != nil {
				return err
			}
			if taken {
				st = EmailAlreadyExist
				return nil
			}
		}
		if in.Username != nil {
			u.Username = *in.Username
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Password != nil {
			hash, err := auth.HashPassword(*in.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		return tx.Save(&u).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &u, Success, nil
}

// DeleteUser removes the user together with every row that references
// it: tickets issued or assigned to the user (and those tickets'
// attachments and messages), then messages sent or received by the
// user. The whole cascade is one transaction.
func DeleteUser(db *gorm.DB, id uint) (*models.User, Status, error) {
	st := Success
	var u models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = UserNotFound
				return nil
			}
			return err
		}
		var ticketIDs []uint
		if err := tx.Model(&models.Ticket{}).
			Where("issuer_id = ? OR assignee_id = ?", id, id).
			Pluck("id", &ticketIDs).Error; err != nil {
			return err
		}
		if len(ticketIDs) > 0 {
			if err := tx.Delete(&models.Attachment{}, "ticket_id IN ?", ticketIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Message{}, "ticket_id IN ?", ticketIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Ticket{}, "id IN ?", ticketIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Message{}, "sender_id = ? OR receiver_id = ?", id, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, st, err
	}
	if st != Success {
		return nil, st, nil
	}
	return &u, Success, nil
}

// VerifyUser reports whether the username resolves to a user whose
// password hash matches. An unknown username and a wrong password are
// indistinguishable on purpose.
func VerifyUser(db *gorm.DB, username, password string) (bool, error) {
	var u models.User
	if err := db.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return auth.CheckPassword(u.PasswordHash, password) == nil, nil
}

func userOut(u models.User) UserOut {
	return UserOut{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
