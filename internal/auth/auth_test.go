package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstantService() *Service {
	s := NewService(0, 0, nil)
	s.LoginDelay = Instant
	s.PasswordDelay = Instant
	return s
}

func TestLoginForm_Validate(t *testing.T) {
	tests := []struct {
		name   string
		form   LoginForm
		signUp bool
		want   FieldErrors
	}{
		{name: "demo credentials", form: DemoForm(), want: FieldErrors{}},
		{
			name: "empty form",
			form: LoginForm{},
			want: FieldErrors{FieldEmail: "Email is required", FieldPassword: "Password is required"},
		},
		{
			name: "bad email",
			form: LoginForm{Email: "test@onit", Password: "test123"},
			want: FieldErrors{FieldEmail: "Email is invalid"},
		},
		{
			name: "short password",
			form: LoginForm{Email: "a@b.co", Password: "12345"},
			want: FieldErrors{FieldPassword: "Password must be at least 6 characters"},
		},
		{
			name: "sign in ignores name",
			form: LoginForm{Email: "a@b.co", Password: "123456", ConfirmPassword: "nope"},
			want: FieldErrors{},
		},
		{
			name:   "sign up needs name and confirmation",
			form:   LoginForm{Email: "a@b.co", Password: "123456"},
			signUp: true,
			want: FieldErrors{
				FieldName:            "Name is required",
				FieldConfirmPassword: "Please confirm your password",
			},
		},
		{
			name:   "sign up mismatch",
			form:   LoginForm{Email: "a@b.co", Password: "123456", Name: "Ann", ConfirmPassword: "654321"},
			signUp: true,
			want:   FieldErrors{FieldConfirmPassword: "Passwords do not match"},
		},
		{
			name:   "sign up ok",
			form:   LoginForm{Email: "a@b.co", Password: "123456", Name: "Ann", ConfirmPassword: "123456"},
			signUp: true,
			want:   FieldErrors{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Validate(tt.signUp))
		})
	}
}

func TestPasswordChange_Validate(t *testing.T) {
	tests := []struct {
		name   string
		change PasswordChange
		want   string
	}{
		{"all empty", PasswordChange{}, msgPasswordFieldsRequired},
		{"missing confirm", PasswordChange{Current: "test123", New: "abcdef"}, msgPasswordFieldsRequired},
		{"required beats length", PasswordChange{New: "abc", Confirm: "abc"}, msgPasswordFieldsRequired},
		{"too short", PasswordChange{Current: "test123", New: "abc", Confirm: "abc"}, msgPasswordTooShort},
		{"length beats mismatch", PasswordChange{Current: "test123", New: "abc", Confirm: "xyz"}, msgPasswordTooShort},
		{"mismatch", PasswordChange{Current: "test123", New: "abcdef", Confirm: "abcdeg"}, msgPasswordMismatch},
		{"mismatch beats reuse", PasswordChange{Current: "test123", New: "test123", Confirm: "other1"}, msgPasswordMismatch},
		{"reuse", PasswordChange{Current: "test123", New: "test123", Confirm: "test123"}, msgPasswordUnchanged},
		{"valid", PasswordChange{Current: "test123", New: "abcdef", Confirm: "abcdef"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.change.Validate())
		})
	}
}

func TestService_Login(t *testing.T) {
	s := newInstantService()
	ctx := context.Background()

	res := s.Login(ctx, DemoForm())
	assert.True(t, res.OK)
	assert.Empty(t, res.Reason)

	res = s.Login(ctx, LoginForm{Email: "test@onit.com", Password: "wrong12"})
	assert.False(t, res.OK)
	assert.Equal(t, msgInvalidCredentials, res.Reason)

	res = s.Login(ctx, LoginForm{Email: "nope", Password: "test123"})
	assert.False(t, res.OK)
	assert.Equal(t, "Email is invalid", res.Reason)
	assert.Contains(t, res.Fields, FieldEmail)
}

func TestService_LoginSkipsDelayOnInvalidForm(t *testing.T) {
	s := newInstantService()
	called := false
	s.LoginDelay = func(context.Context) error {
		called = true
		return nil
	}
	s.Login(context.Background(), LoginForm{})
	assert.False(t, called)

	s.Login(context.Background(), DemoForm())
	assert.True(t, called)
}

func TestService_LoginCancelled(t *testing.T) {
	s := NewService(time.Hour, time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.Login(ctx, DemoForm())
	assert.False(t, res.OK)
	assert.Equal(t, context.Canceled.Error(), res.Reason)
}

func TestService_SignUp(t *testing.T) {
	s := newInstantService()
	res := s.SignUp(context.Background(), LoginForm{
		Email: "new@studio.io", Password: "secret1", Name: "New Person", ConfirmPassword: "secret1",
	})
	assert.True(t, res.OK)

	res = s.SignUp(context.Background(), LoginForm{Email: "new@studio.io", Password: "secret1"})
	assert.False(t, res.OK)
	assert.Equal(t, "Name is required", res.Reason)
}

func TestService_ChangePassword(t *testing.T) {
	s := newInstantService()
	ctx := context.Background()

	res := s.ChangePassword(ctx, PasswordChange{Current: "test123", New: "abcdef", Confirm: "abcdef"})
	assert.True(t, res.OK)
	assert.Equal(t, msgPasswordUpdated, res.Reason)

	// The demo password is never replaced.
	res = s.ChangePassword(ctx, PasswordChange{Current: "abcdef", New: "ghijkl", Confirm: "ghijkl"})
	assert.False(t, res.OK)
	assert.Equal(t, msgWrongPassword, res.Reason)

	res = s.ChangePassword(ctx, PasswordChange{Current: "test123"})
	assert.Equal(t, msgPasswordFieldsRequired, res.Reason)
}

func TestSleep(t *testing.T) {
	require.NoError(t, Sleep(0)(context.Background()))
	require.NoError(t, Sleep(time.Millisecond)(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(time.Hour)(ctx), context.Canceled)
	assert.ErrorIs(t, Sleep(0)(ctx), context.Canceled)
}
