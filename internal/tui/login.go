package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/auth"
)

const (
	modeSignIn = "signin"
	modeSignUp = "signup"
)

// loginResultMsg carries the outcome of a submitted login or sign-up.
type loginResultMsg struct {
	signUp bool
	email  string
	result auth.Result
}

// loginModel gates the app behind the demo sign-in.
type loginModel struct {
	svc    *auth.Service
	ctx    context.Context
	width  int
	height int

	form       *huh.Form
	mode       *string
	email      *string
	password   *string
	name       *string
	confirm    *string
	submitting bool
	spinner    spinner.Model
	reason     string
	fields     auth.FieldErrors
}

func newLoginModel(ctx context.Context, svc *auth.Service) *loginModel {
	demo := auth.DemoForm()
	mode := modeSignIn
	name, confirm := "", ""
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	l := &loginModel{
		svc:      svc,
		ctx:      ctx,
		mode:     &mode,
		email:    &demo.Email,
		password: &demo.Password,
		name:     &name,
		confirm:  &confirm,
		spinner:  sp,
	}
	l.buildForm()
	return l
}

// buildForm creates a fresh form over the current values, so a failed
// submission keeps what was typed.
func (l *loginModel) buildForm() {
	l.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Account").
				Options(
					huh.NewOption("Sign in", modeSignIn),
					huh.NewOption("Create account", modeSignUp),
				).Value(l.mode),
			huh.NewInput().Title("Email").Value(l.email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(l.password),
		).Title("Welcome to Onit").Description("Demo account: "+auth.DemoEmail+" / "+auth.DemoPassword),
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(l.name),
			huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(l.confirm),
		).Title("Create account").WithHideFunc(func() bool { return *l.mode != modeSignUp }),
	).WithShowHelp(true)
}

func (l *loginModel) init() tea.Cmd { return l.form.Init() }

func (l *loginModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

func (l *loginModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		l.submitting = false
		if msg.result.OK {
			email := msg.email
			return func() tea.Msg { return loginDoneMsg{email: email} }
		}
		l.reason = msg.result.Reason
		l.fields = msg.result.Fields
		l.buildForm()
		return l.form.Init()
	case spinner.TickMsg:
		if !l.submitting {
			return nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return cmd
	}

	if l.submitting {
		return nil
	}

	form, res, cmd := updateHuh(l.form, msg)
	l.form = form
	switch res {
	case formDone:
		l.submitting = true
		l.reason = ""
		l.fields = nil
		return tea.Batch(l.submit(), l.spinner.Tick)
	case formCancelled:
		l.buildForm()
		return l.form.Init()
	}
	return cmd
}

func (l *loginModel) submit() tea.Cmd {
	form := auth.LoginForm{
		Email:           *l.email,
		Password:        *l.password,
		Name:            *l.name,
		ConfirmPassword: *l.confirm,
	}
	signUp := *l.mode == modeSignUp
	svc, ctx := l.svc, l.ctx
	return func() tea.Msg {
		var res auth.Result
		if signUp {
			res = svc.SignUp(ctx, form)
		} else {
			res = svc.Login(ctx, form)
		}
		return loginResultMsg{signUp: signUp, email: form.Email, result: res}
	}
}

func (l *loginModel) view() string {
	w := min(l.width-4, 64)

	rows := []string{titleStyle.Render("Onit"), subtitleStyle.Render("Studio operations dashboard"), ""}
	if l.submitting {
		label := "Signing in..."
		if *l.mode == modeSignUp {
			label = "Creating account..."
		}
		rows = append(rows, l.spinner.View()+" "+label)
	} else {
		rows = append(rows, l.form.View())
	}
	if l.reason != "" {
		rows = append(rows, "", errorStyle.Render(l.reason))
	}
	for _, f := range []string{auth.FieldEmail, auth.FieldPassword, auth.FieldName, auth.FieldConfirmPassword} {
		if msg, ok := l.fields[f]; ok && msg != l.reason {
			rows = append(rows, mutedStyle.Render("  "+msg))
		}
	}

	box := activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, box)
}
