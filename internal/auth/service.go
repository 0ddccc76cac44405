package auth

import (
	"context"
	"time"

	"github.com/sadopc/studiodesk/internal/log"
)

const (
	DemoEmail    = "test@onit.com"
	DemoPassword = "test123"

	msgInvalidCredentials = "Invalid credentials. Use test@onit.com / test123"
	msgPasswordUpdated    = "Password updated successfully!"
	msgWrongPassword      = "Incorrect current password."
)

// Delay simulates a server round trip. It returns ctx's error when ctx is
// cancelled before the delay elapses.
type Delay func(ctx context.Context) error

// Sleep waits for d or until ctx is done.
func Sleep(d time.Duration) Delay {
	return func(ctx context.Context) error {
		if d <= 0 {
			return ctx.Err()
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}

// Instant is a Delay that never waits.
func Instant(ctx context.Context) error { return ctx.Err() }

// Result is the outcome of a submitted form. Fields holds per-field
// validation messages; Reason is the form-level message.
type Result struct {
	OK     bool
	Reason string
	Fields FieldErrors
}

// Service runs the simulated account flows against the fixed demo account.
// Nothing is persisted.
type Service struct {
	Email         string
	Password      string
	LoginDelay    Delay
	PasswordDelay Delay

	logger *log.Logger
}

func NewService(loginDelay, passwordDelay time.Duration, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Discard()
	}
	return &Service{
		Email:         DemoEmail,
		Password:      DemoPassword,
		LoginDelay:    Sleep(loginDelay),
		PasswordDelay: Sleep(passwordDelay),
		logger:        logger.WithComponent(log.ComponentAuth),
	}
}

// Login validates the form, waits for the login delay and checks the
// credentials against the demo account.
func (s *Service) Login(ctx context.Context, form LoginForm) Result {
	if errs := form.Validate(false); !errs.Empty() {
		return Result{Fields: errs, Reason: errs.First(loginFieldOrder...)}
	}
	if err := s.wait(ctx, s.LoginDelay); err != nil {
		s.logger.Warn("login interrupted", log.FieldOperation, log.OpLogin, log.FieldError, err)
		return Result{Reason: err.Error()}
	}
	if form.Email != s.Email || form.Password != s.Password {
		s.logger.Warn("login rejected", log.FieldOperation, log.OpLogin, log.FieldEmail, form.Email)
		return Result{Reason: msgInvalidCredentials}
	}
	s.logger.InfoContext(ctx, "login succeeded", log.FieldOperation, log.OpLogin, log.FieldEmail, form.Email)
	return Result{OK: true}
}

// SignUp validates the sign-up form and, after the login delay, accepts
// it. No account is created.
func (s *Service) SignUp(ctx context.Context, form LoginForm) Result {
	if errs := form.Validate(true); !errs.Empty() {
		return Result{Fields: errs, Reason: errs.First(loginFieldOrder...)}
	}
	if err := s.wait(ctx, s.LoginDelay); err != nil {
		s.logger.Warn("sign up interrupted", log.FieldOperation, log.OpSignUp, log.FieldError, err)
		return Result{Reason: err.Error()}
	}
	s.logger.InfoContext(ctx, "sign up accepted",
		log.FieldOperation, log.OpSignUp, log.FieldEmail, form.Email, "name", form.Name)
	return Result{OK: true}
}

// ChangePassword validates the change, waits for the password delay and
// checks the current password. The stored password is left as is.
func (s *Service) ChangePassword(ctx context.Context, change PasswordChange) Result {
	if msg := change.Validate(); msg != "" {
		return Result{Reason: msg}
	}
	if err := s.wait(ctx, s.PasswordDelay); err != nil {
		s.logger.Warn("password change interrupted", log.FieldOperation, log.OpPassword, log.FieldError, err)
		return Result{Reason: err.Error()}
	}
	if change.Current != s.Password {
		s.logger.Warn("password change rejected", log.FieldOperation, log.OpPassword)
		return Result{Reason: msgWrongPassword}
	}
	s.logger.InfoContext(ctx, "password change accepted", log.FieldOperation, log.OpPassword)
	return Result{OK: true, Reason: msgPasswordUpdated}
}

func (s *Service) wait(ctx context.Context, d Delay) error {
	if d == nil {
		return ctx.Err()
	}
	return d(ctx)
}
