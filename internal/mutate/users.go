package mutate

import (
	"errors"
	"strings"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
)

var (
	ErrDuplicateEmail   = errors.New("a user with this email already exists")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

type NewUser struct {
	Name            string
	Email           string
	Role            model.UserRole
	Department      string
	Permissions     []string
	Password        string
	ConfirmPassword string
}

// CreateUser validates and appends a new user. Validation is limited to
// required-field presence plus the duplicate-email and password-mismatch
// checks; failures surface as transient notifications, never fatal errors.
// Passwords are not stored anywhere (no auth enforcement in this console).
func CreateUser(db *store.DB, in NewUser, now time.Time) (*model.User, error) {
	if db == nil {
		return nil, ValidationError{Message: "no session store"}
	}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return nil, ValidationError{Field: "name", Message: "required"}
	}
	if email == "" {
		return nil, ValidationError{Field: "email", Message: "required"}
	}
	if _, exists := db.FindUserByEmail(email); exists {
		return nil, ErrDuplicateEmail
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	u := model.User{
		ID:          db.NextID(store.PrefixUser, now),
		Name:        name,
		Email:       email,
		Role:        role,
		Department:  strings.TrimSpace(in.Department),
		Status:      model.UserActive,
		Permissions: in.Permissions,
		CreatedAt:   now,
	}
	db.AddUser(u)
	created, _ := db.FindUser(u.ID)
	return created, nil
}

type UserResult struct {
	User    *model.User
	Changed bool
}

// SetUserStatus flips a user's status (active/inactive/on-leave/terminated).
func SetUserStatus(db *store.DB, userID string, status model.UserStatus) (UserResult, error) {
	userID = strings.TrimSpace(userID)
	if db == nil || userID == "" {
		return UserResult{}, ValidationError{Field: "user id", Message: "required"}
	}
	u, ok := db.FindUser(userID)
	if !ok {
		return UserResult{}, NotFoundError{Kind: "user", ID: userID}
	}
	if u.Status == status {
		return UserResult{User: u, Changed: false}, nil
	}
	u.Status = status
	return UserResult{User: u, Changed: true}, nil
}

// UpdateUserEmail re-runs the duplicate check against everyone else.
func UpdateUserEmail(db *store.DB, userID, email string) (UserResult, error) {
	userID = strings.TrimSpace(userID)
	email = strings.TrimSpace(email)
	if db == nil || userID == "" {
		return UserResult{}, ValidationError{Field: "user id", Message: "required"}
	}
	u, ok := db.FindUser(userID)
	if !ok {
		return UserResult{}, NotFoundError{Kind: "user", ID: userID}
	}
	if email == "" {
		return UserResult{}, ValidationError{Field: "email", Message: "required"}
	}
	if other, exists := db.FindUserByEmail(email); exists && other.ID != u.ID {
		return UserResult{}, ErrDuplicateEmail
	}
	if strings.EqualFold(u.Email, email) {
		return UserResult{User: u, Changed: false}, nil
	}
	u.Email = email
	return UserResult{User: u, Changed: true}, nil
}
