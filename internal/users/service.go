package users

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/masalabox/orderflow/internal/notify"
)

const otpTTL = 5 * time.Minute

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrNoOTP              = errors.New("no OTP generated for this number")
	ErrOTPExpired         = errors.New("OTP has expired")
	ErrInvalidOTP         = errors.New("invalid OTP")
)

// Service implements password and OTP authentication.
type Service struct {
	store   *Store
	sms     notify.SMSSender
	nowFunc func() time.Time
}

// NewService creates an auth service. sms delivers OTP codes.
func NewService(store *Store, sms notify.SMSSender) *Service {
	return &Service{store: store, sms: sms, nowFunc: time.Now}
}

// Authenticate logs a user in by password, creating the account on first
// use. Returns the user and whether it was just created.
func (s *Service) Authenticate(ctx context.Context, username, password, mobile string) (*User, bool, error) {
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, false, fmt.Errorf("auth lookup: %w", err)
	}

	if u != nil {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, false, ErrInvalidCredentials
		}
		return u, false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	u = &User{
		Username:     username,
		Mobile:       mobile,
		PasswordHash: string(hash),
		Role:         RoleUser,
		CreatedAt:    s.nowFunc().UTC(),
	}
	if err := s.store.Put(ctx, u); err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	log.Info().Str("username", username).Msg("users: account created")
	return u, true, nil
}

// AdminLogin authenticates an admin account. Non-admin users are rejected
// with ErrUnauthorized before the password is checked.
func (s *Service) AdminLogin(ctx context.Context, username, password string) (*User, error) {
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("admin lookup: %w", err)
	}
	if u == nil || u.Role != RoleAdmin {
		return nil, ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GenerateOTP creates a 6-digit code for the user owning the mobile number,
// persists it with a 5-minute expiry and hands it to the SMS sender.
func (s *Service) GenerateOTP(ctx context.Context, mobile string) error {
	u, err := s.store.GetByMobile(ctx, mobile)
	if err != nil {
		return fmt.Errorf("otp lookup: %w", err)
	}
	if u == nil {
		return ErrUserNotFound
	}

	otp, err := randomOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	expires := s.nowFunc().Add(otpTTL)
	u.OTP = otp
	u.OTPExpires = &expires
	if err := s.store.Put(ctx, u); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	if err := s.sms.Send(ctx, mobile, fmt.Sprintf("Your login OTP is %s. It expires in 5 minutes.", otp)); err != nil {
		// the OTP is already persisted; delivery failure is surfaced so the
		// caller can tell the user to retry
		return fmt.Errorf("send otp: %w", err)
	}

	log.Info().Str("mobile", mobile).Msg("users: otp generated")
	return nil
}

// VerifyOTP checks the code for a mobile number and clears it on success.
func (s *Service) VerifyOTP(ctx context.Context, mobile, otp string) (*User, error) {
	u, err := s.store.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("otp lookup: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.OTP == "" || u.OTPExpires == nil {
		return nil, ErrNoOTP
	}
	if u.OTPExpires.Before(s.nowFunc()) {
		return nil, ErrOTPExpired
	}
	if u.OTP != otp {
		return nil, ErrInvalidOTP
	}

	u.OTP = ""
	u.OTPExpires = nil
	if err := s.store.Put(ctx, u); err != nil {
		return nil, fmt.Errorf("clear otp: %w", err)
	}
	return u, nil
}

// randomOTP returns a uniformly random 6-digit code, zero-padded.
func randomOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
