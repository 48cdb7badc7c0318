package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// Admin fixture keeps the real clock so issued tokens carry a live expiry
// and parse cleanly.
func newAdminFixture() (*AdminService, *memUsers) {
	users := newMemUsers()
	return NewAdminService(users, "test-secret"), users
}

func TestCreateAdmin(t *testing.T) {
	svc, _ := newAdminFixture()
	u, err := svc.CreateAdmin(context.Background(), NewAdmin{
		Email:     "Admin@Example.com",
		Password:  "hunter2hunter2",
		CompanyID: "c1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Email != "admin@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash == "hunter2hunter2" || u.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
	if u.Superuser {
		t.Error("new admins must not start as superuser")
	}
}

func TestCreateAdminValidation(t *testing.T) {
	svc, users := newAdminFixture()
	ctx := context.Background()

	tests := []struct {
		name string
		req  NewAdmin
	}{
		{"empty email", NewAdmin{Password: "hunter2hunter2"}},
		{"short password", NewAdmin{Email: "a@b.c", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAdmin(ctx, tt.req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
	if len(users.docs) != 0 {
		t.Errorf("store holds %d users after failed validation", len(users.docs))
	}
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()
	req := NewAdmin{Email: "a@b.c", Password: "hunter2hunter2"}

	if _, err := svc.CreateAdmin(ctx, req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateAdmin(ctx, req)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("duplicate create err = %v, want ValidationError", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()
	created, _ := svc.CreateAdmin(ctx, NewAdmin{Email: "a@b.c", Password: "hunter2hunter2"})

	token, u, err := svc.Login(ctx, "a@b.c", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.UID != created.UID {
		t.Errorf("uid = %q, want %q", u.UID, created.UID)
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != created.UID {
		t.Errorf("sub = %q", claims.Subject)
	}
	if claims.Superuser {
		t.Error("superuser claim set for plain admin")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()
	svc.CreateAdmin(ctx, NewAdmin{Email: "a@b.c", Password: "hunter2hunter2"})

	_, _, err := svc.Login(ctx, "a@b.c", "wrong")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("err = %v, want ValidationError", err)
	}

	_, _, err = svc.Login(ctx, "nobody@b.c", "whatever")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user err = %v, want not-found", err)
	}
}

func TestElevateSetsClaimOnLogin(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()
	created, _ := svc.CreateAdmin(ctx, NewAdmin{Email: "a@b.c", Password: "hunter2hunter2"})

	if _, err := svc.Elevate(ctx, created.UID); err != nil {
		t.Fatalf("elevate: %v", err)
	}

	token, _, err := svc.Login(ctx, "a@b.c", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	var claims Claims
	if _, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !claims.Superuser {
		t.Error("superuser claim missing after elevation")
	}
}

func TestDeleteAdmin(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()
	created, _ := svc.CreateAdmin(ctx, NewAdmin{Email: "a@b.c", Password: "hunter2hunter2"})

	if err := svc.DeleteAdmin(ctx, created.UID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteAdmin(ctx, created.UID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want not-found", err)
	}
}
