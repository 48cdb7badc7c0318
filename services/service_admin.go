package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"onboard_panel/model"
)

// AdminService provisions admin accounts and issues bearer tokens. It plays
// the role of the auth provider: identity and profile live in the same
// users document, so create/delete touch a single record.
type AdminService struct {
	users     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
	now       Clock
}

func NewAdminService(users UserStore, jwtSecret string) *AdminService {
	return &AdminService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  12 * time.Hour,
		now:       time.Now,
	}
}

func (s *AdminService) WithClock(now Clock) *AdminService {
	s.now = now
	return s
}

// NewAdmin carries a provisioning request from the superuser dashboard.
type NewAdmin struct {
	Email             string
	Password          string
	CompanyID         string
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
}

// CreateAdmin provisions an identity plus profile. A duplicate email fails
// validation, mirroring the auth provider's email-already-exists error.
func (s *AdminService) CreateAdmin(ctx context.Context, req NewAdmin) (*model.AdminUser, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "is required"}
	}
	if len(req.Password) < 8 {
		return nil, &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, backendErr("lookup admin", err)
	}
	if existing != nil {
		return nil, &ValidationError{Field: "email", Reason: "already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, backendErr("hash password", err)
	}

	u := &model.AdminUser{
		UID:               uuid.NewString(),
		Email:             email,
		PasswordHash:      string(hash),
		CompanyID:         req.CompanyID,
		CreatedAt:         s.now().UTC(),
		SubscriptionStart: req.SubscriptionStart,
		SubscriptionEnd:   req.SubscriptionEnd,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, backendErr("create admin", err)
	}
	return u, nil
}

// DeleteAdmin removes identity and profile.
func (s *AdminService) DeleteAdmin(ctx context.Context, uid string) error {
	u, err := s.users.Get(ctx, uid)
	if err != nil {
		return backendErr("get admin", err)
	}
	if u == nil {
		return &NotFoundError{Entity: "user", ID: uid}
	}
	if err := s.users.Delete(ctx, uid); err != nil {
		return backendErr("delete admin", err)
	}
	return nil
}

// Elevate sets the superuser flag post-hoc, the equivalent of writing a
// custom claim on the identity.
func (s *AdminService) Elevate(ctx context.Context, uid string) (*model.AdminUser, error) {
	u, err := s.users.Get(ctx, uid)
	if err != nil {
		return nil, backendErr("get admin", err)
	}
	if u == nil {
		return nil, &NotFoundError{Entity: "user", ID: uid}
	}
	u.Superuser = true
	if err := s.users.Update(ctx, u); err != nil {
		return nil, backendErr("elevate admin", err)
	}
	return u, nil
}

// List returns every admin profile, for the superuser dashboard.
func (s *AdminService) List(ctx context.Context) ([]model.AdminUser, error) {
	out, err := s.users.List(ctx)
	if err != nil {
		return nil, backendErr("list admins", err)
	}
	return out, nil
}

// Claims is the bearer-token payload: subject uid plus the superuser flag.
type Claims struct {
	Superuser bool `json:"superuser,omitempty"`
	jwt.RegisteredClaims
}

// Login checks credentials and issues an HS256 token.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, *model.AdminUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, &ValidationError{Field: "email", Reason: "and password are required"}
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, backendErr("lookup admin", err)
	}
	if u == nil {
		return "", nil, &NotFoundError{Entity: "user", ID: email}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, &ValidationError{Field: "password", Reason: "is incorrect"}
	}

	now := s.now().UTC()
	claims := Claims{
		Superuser: u.Superuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, backendErr("sign token", err)
	}
	return token, u, nil
}
