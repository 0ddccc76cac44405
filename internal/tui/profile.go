package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/auth"
	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
)

type passwordResultMsg struct {
	result auth.Result
}

type profileForm int

const (
	profileNoForm profileForm = iota
	profileEditForm
	profilePasswordForm
)

type profileModel struct {
	svc    *auth.Service
	ctx    context.Context
	logger *log.Logger
	width  int
	height int

	name  string
	email string
	role  string

	open profileForm
	form *huh.Form

	// Edit values
	editName  *string
	editEmail *string
	editRole  *string

	change   *auth.PasswordChange
	changing bool
	message  string
	isError  bool
}

func newProfileModel(ctx context.Context, c *store.Catalog, svc *auth.Service, logger *log.Logger) *profileModel {
	n, e, r := "", "", ""
	return &profileModel{
		svc:       svc,
		ctx:       ctx,
		logger:    logger,
		name:      c.Setting("profile_name", "John Doe"),
		email:     c.Setting("profile_email", "john.doe@onit.com"),
		role:      c.Setting("profile_role", "Senior Developer"),
		editName:  &n,
		editEmail: &e,
		editRole:  &r,
		change:    &auth.PasswordChange{},
	}
}

func (p *profileModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p *profileModel) capturing() bool { return p.open != profileNoForm }

// setEmail shows the signed-in address on the profile.
func (p *profileModel) setEmail(email string) {
	if email != "" {
		p.email = email
	}
}

func (p *profileModel) update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(passwordResultMsg); ok {
		p.changing = false
		p.message = msg.result.Reason
		p.isError = !msg.result.OK
		if msg.result.OK {
			*p.change = auth.PasswordChange{}
		}
		return statusCmd(msg.result.Reason, p.isError)
	}

	if p.open != profileNoForm {
		return p.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok || p.changing {
		return nil
	}
	switch {
	case key.Matches(msgKey, keys.Enter):
		return p.showEditForm()
	case msgKey.String() == "w":
		return p.showPasswordForm()
	}
	return nil
}

func (p *profileModel) showEditForm() tea.Cmd {
	*p.editName = p.name
	*p.editEmail = p.email
	*p.editRole = p.role
	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(p.editName).Validate(required("Name")),
			huh.NewInput().Title("Email").Value(p.editEmail).Validate(required("Email")),
			huh.NewInput().Title("Role").Value(p.editRole),
		).Title("Edit Profile"),
	).WithShowHelp(true).WithShowErrors(true)
	p.open = profileEditForm
	return p.form.Init()
}

func (p *profileModel) showPasswordForm() tea.Cmd {
	p.message = ""
	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Current password").EchoMode(huh.EchoModePassword).Value(&p.change.Current),
			huh.NewInput().Title("New password").EchoMode(huh.EchoModePassword).Value(&p.change.New),
			huh.NewInput().Title("Confirm new password").EchoMode(huh.EchoModePassword).Value(&p.change.Confirm),
		).Title("Change Password"),
	).WithShowHelp(true)
	p.open = profilePasswordForm
	return p.form.Init()
}

func (p *profileModel) updateForm(msg tea.Msg) tea.Cmd {
	form, res, cmd := updateHuh(p.form, msg)
	p.form = form
	if res == formOpen {
		return cmd
	}

	opened := p.open
	p.open = profileNoForm
	p.form = nil
	if res == formCancelled {
		return nil
	}

	switch opened {
	case profileEditForm:
		p.name, p.email, p.role = *p.editName, *p.editEmail, *p.editRole
		p.logger.Info("profile saved",
			log.FieldOperation, log.OpSave,
			log.FieldScreen, "profile",
			"name", p.name,
			log.FieldEmail, p.email,
			"role", p.role,
		)
		return statusCmd("Profile saved", false)
	case profilePasswordForm:
		p.changing = true
		change := *p.change
		svc, ctx := p.svc, p.ctx
		return func() tea.Msg {
			return passwordResultMsg{result: svc.ChangePassword(ctx, change)}
		}
	}
	return nil
}

func (p *profileModel) view() string {
	w := p.width - 4

	if p.form != nil {
		return activePanelStyle.Width(w).Render(p.form.View())
	}

	field := func(label, value string) string {
		return fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(10).Render(label), highlightStyle.Render(value))
	}

	rows := []string{
		titleStyle.Render("Profile"),
		"",
		field("Name", p.name),
		field("Email", p.email),
		field("Role", p.role),
		"",
	}
	switch {
	case p.changing:
		rows = append(rows, warningStyle.Render("Updating password..."))
	case p.message != "" && p.isError:
		rows = append(rows, errorStyle.Render(p.message))
	case p.message != "":
		rows = append(rows, successStyle.Render(p.message))
	}
	rows = append(rows, "", mutedStyle.Render("enter: edit profile  w: change password"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
