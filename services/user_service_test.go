package services

import (
	"errors"
	"testing"

	"canteen-backend/apperr"
	"canteen-backend/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	input := RegisterInput{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "s3cret-pass",
	}
	user, err := svc.Register(input)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != models.RoleDiner {
		t.Errorf("role = %s, want %s", user.Role, models.RoleDiner)
	}
	if user.Password == input.Password {
		t.Error("password must be stored hashed")
	}

	got, err := svc.Authenticate("dave", "s3cret-pass")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated user id = %d, want %d", got.ID, user.ID)
	}

	if _, err := svc.Authenticate("dave", "wrong"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("wrong password = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Authenticate("nobody", "s3cret-pass"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("unknown user = %v, want ErrUnauthorized", err)
	}
}

func TestUpdateRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(RegisterInput{Username: "dave", Email: "dave@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	promoted, err := svc.UpdateRole(user.ID, " staff ")
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if promoted.Role != models.RoleStaff {
		t.Errorf("role = %s, want %s", promoted.Role, models.RoleStaff)
	}
	stored, err := svc.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Role != models.RoleStaff {
		t.Errorf("stored role = %s, want %s", stored.Role, models.RoleStaff)
	}

	if _, err := svc.UpdateRole(user.ID, "SUPERUSER"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("unknown role = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.UpdateRole(999, models.RoleStaff); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown user = %v, want ErrNotFound", err)
	}
}

func TestResetPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(RegisterInput{Username: "dave", Email: "dave@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ResetPassword(user.ID, "fresh-pass"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, err := svc.Authenticate("dave", "fresh-pass"); err != nil {
		t.Errorf("Authenticate with new password: %v", err)
	}
	if _, err := svc.Authenticate("dave", "s3cret-pass"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("old password = %v, want ErrUnauthorized", err)
	}

	if err := svc.ResetPassword(user.ID, "short"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("short password = %v, want ErrInvalidInput", err)
	}
	if err := svc.ResetPassword(999, "fresh-pass"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown user = %v, want ErrNotFound", err)
	}
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(RegisterInput{Username: "dave", Email: "dave@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(user.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(user.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("delete twice = %v, want ErrNotFound", err)
	}
}

func TestGetAllUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	for _, u := range []RegisterInput{
		{Username: "dave", Email: "dave@example.com", Password: "s3cret-pass"},
		{Username: "erin", Email: "erin@example.com", Password: "s3cret-pass"},
	} {
		if _, err := svc.Register(u); err != nil {
			t.Fatalf("Register %s: %v", u.Username, err)
		}
	}

	users, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("got %d users, want 2", len(users))
	}
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	input := RegisterInput{Username: "dave", Email: "dave@example.com", Password: "s3cret-pass"}
	if _, err := svc.Register(input); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(input); !errors.Is(err, apperr.ErrDuplicateEntry) {
		t.Errorf("duplicate Register = %v, want ErrDuplicateEntry", err)
	}
}
