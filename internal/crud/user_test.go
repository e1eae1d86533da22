package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/models"
)

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)

	u, st, err := CreateUser(db, UserCreate{
		Username: "user1",
		Email:    "user1@gmail.com",
		Password: "123",
		Role:     models.RoleClient,
	})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	require.NotNil(t, u)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "user1", u.Username)
	assert.Equal(t, models.RoleClient, u.Role)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "123", u.PasswordHash)
}

func TestCreateUserDefaultsRole(t *testing.T) {
	db := setupTestDB(t)

	u, st, err := CreateUser(db, UserCreate{Username: "norole", Email: "norole@gmail.com", Password: "123"})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	assert.Equal(t, models.RoleClient, u.Role)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "user1", models.RoleClient)

	u, st, err := CreateUser(db, UserCreate{
		Username: "user1",
		Email:    "other@gmail.com",
		Password: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, UnameAlreadyExist, st)
	assert.Nil(t, u)

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "user1", models.RoleClient)

	u, st, err := CreateUser(db, UserCreate{
		Username: "user2",
		Email:    "user1@example.com",
		Password: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, EmailAlreadyExist, st)
	assert.Nil(t, u)
}

// When both username and email collide, the username violation wins.
func TestCreateUserDuplicateBothReportsUsername(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "user1", models.RoleClient)

	_, st, err := CreateUser(db, UserCreate{
		Username: "user1",
		Email:    "user1@example.com",
		Password: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, UnameAlreadyExist, st)
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db, "user1", models.RoleSupport)

	out, st, err := GetUser(db, u.ID)
	require.NoError(t, err)
	require.Equal(t, Success, st)
	assert.Equal(t, u.ID, out.ID)
	assert.Equal(t, "user1", out.Username)
	assert.Equal(t, models.RoleSupport, out.Role)
}

func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	out, st, err := GetUser(db, 9999)
	require.NoError(t, err)
	assert.Equal(t, UserNotFound, st)
	assert.Nil(t, out)
}

func TestGetUserIdempotent(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db, "user1", models.RoleClient)

	first, st, err := GetUser(db, u.ID)
	require.NoError(t, err)
	require.Equal(t, Success, st)
	second, st, err := GetUser(db, u.ID)
	require.NoError(t, err)
	require.Equal(t, Success, st)
	assert.Equal(t, first, second)
}

func TestUpdateUserPartial(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db, "user1", models.RoleClient)

	updated, st, err := UpdateUser(db, u.ID, UserUpdate{Email: ptr("new@example.com")})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "user1", updated.Username)
	assert.Equal(t, u.PasswordHash, updated.PasswordHash)
}

func TestUpdateUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	updated, st, err := UpdateUser(db, 42, UserUpdate{Email: ptr("new@example.com")})
	require.NoError(t, err)
	assert.Equal(t, UserNotFound, st)
	assert.Nil(t, updated)
}

func TestUpdateUserUniqueness(t *testing.T) {
	db := setupTestDB(t)
	u1 := createTestUser(t, db, "user1", models.RoleClient)
	createTestUser(t, db, "user2", models.RoleSupport)

	_, st, err := UpdateUser(db, u1.ID, UserUpdate{Username: ptr("user2")})
	require.NoError(t, err)
	assert.Equal(t, UnameAlreadyExist, st)

	_, st, err = UpdateUser(db, u1.ID, UserUpdate{Email: ptr("user2@example.com")})
	require.NoError(t, err)
	assert.Equal(t, EmailAlreadyExist, st)
}

// Re-submitting the current username or email is not a conflict.
func TestUpdateUserKeepsOwnValues(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db, "user1", models.RoleClient)

	updated, st, err := UpdateUser(db, u.ID, UserUpdate{
		Username: ptr("user1"),
		Email:    ptr("user1@example.com"),
	})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	assert.Equal(t, "user1", updated.Username)
}

func TestUpdateUserPasswordRehashed(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db, "user1", models.RoleClient)

	updated, st, err := UpdateUser(db, u.ID, UserUpdate{Password: ptr("newpass")})
	require.NoError(t, err)
	require.Equal(t, Success, st)
	assert.NotEqual(t, "newpass", updated.PasswordHash)
	assert.NotEqual(t, u.PasswordHash, updated.PasswordHash)

	ok, err := VerifyUser(db, "user1", "newpass")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	deleted, st, err := DeleteUser(db, 17)
	require.NoError(t, err)
	assert.Equal(t, UserNotFound, st)
	assert.Nil(t, deleted)
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	u1 := createTestUser(t, db, "user1", models.RoleClient)
	u2 := createTestUser(t, db, "user2", models.RoleSupport)
	u3 := createTestUser(t, db, "user3", models.RoleClient)

	issued := createTestTicket(t, db, u1.ID, nil)
	assigned := createTestTicket(t, db, u3.ID, &u1.ID)
	unrelated := createTestTicket(t, db, u3.ID, &u2.ID)

	att := createTestAttachment(t, db, issued.ID, "report.pdf", "application/pdf")
	msg := createTestMessage(t, db, issued.ID, u1.ID, u2.ID, "hello")
	sentOnOther := createTestMessage(t, db, unrelated.ID, u1.ID, u3.ID, "drive-by comment")
	keep := createTestMessage(t, db, unrelated.ID, u3.ID, u2.ID, "still here")

	deleted, st, err := DeleteUser(db, u1.ID)
	require.NoError(t, err)
	require.Equal(t, Success, st)
	assert.Equal(t, "user1", deleted.Username)

	// tickets issued by or assigned to the user are gone, with their children
	_, st, err = GetTicket(db, issued.ID)
	require.NoError(t, err)
	assert.Equal(t, TicketNotFound, st)
	_, st, err = GetTicket(db, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, TicketNotFound, st)
	_, st, err = GetAttachment(db, att.ID)
	require.NoError(t, err)
	assert.Equal(t, FileNotFound, st)
	_, st, err = GetMessage(db, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, MessageNotFound, st)

	// messages the user sent on unrelated tickets are gone too
	_, st, err = GetMessage(db, sentOnOther.ID)
	require.NoError(t, err)
	assert.Equal(t, MessageNotFound, st)

	// everything else survives
	_, st, err = GetTicket(db, unrelated.ID)
	require.NoError(t, err)
	assert.Equal(t, Success, st)
	_, st, err = GetMessage(db, keep.ID)
	require.NoError(t, err)
	assert.Equal(t, Success, st)
	_, st, err = GetUser(db, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, Success, st)
}

func TestVerifyUser(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "user1", models.RoleClient)

	ok, err := VerifyUser(db, "user1", "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyUser(db, "user1", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifyUser(db, "ghost", "secret123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "user1", models.RoleClient)
	createTestUser(t, db, "user2", models.RoleAdmin)

	outs, err := ListUsers(db)
	require.NoError(t, err)
	assert.Len(t, outs, 2)
}
