package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/studiodesk/internal/auth"
	"github.com/sadopc/studiodesk/internal/export"
	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

func (a *App) logList(screen string, total int) {
	a.logger().Debug("listed", log.FieldOperation, log.OpList, log.FieldScreen, screen, log.FieldCount, total)
}

func newClientsCmd(app *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := view.NewClientsState(app.Catalog, app.pageSize())
			if err := f.apply(s); err != nil {
				return err
			}
			page := s.Page()
			app.logList("clients", page.Total)
			return writePage(cmd.OutOrStdout(), f.format, page,
				[]string{"Name", "Company", "Email", "Phone", "Projects", "Balance", "Status"},
				func(c store.Client) []string {
					return []string{c.Name, c.Company, c.Email, c.Phone, strconv.Itoa(c.ProjectCount), money(c.Balance), c.Status}
				})
		},
	}
	f.register(cmd, false)

	return cmd
}

func newProjectsCmd(app *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := view.NewProjectsState(app.Catalog, app.pageSize())
			if err := f.apply(s); err != nil {
				return err
			}
			page := s.Page()
			app.logList("projects", page.Total)
			return writePage(cmd.OutOrStdout(), f.format, page,
				[]string{"ID", "Name", "Client", "Progress", "Hours", "Budget", "Spent", "Status"},
				func(p store.Project) []string {
					return []string{
						strconv.FormatInt(p.ID, 10), p.Name, p.Client, fmt.Sprintf("%d%%", p.Progress),
						strconv.FormatFloat(p.Hours, 'f', -1, 64), money(p.Budget), money(p.Spent), p.Status,
					}
				})
		},
	}
	f.register(cmd, false)

	cmd.AddCommand(newProjectIssuesCmd(app), newProjectEntriesCmd(app))
	return cmd
}

func newProjectIssuesCmd(app *App) *cobra.Command {
	var page int
	var format string

	cmd := &cobra.Command{
		Use:   "issues",
		Short: "List the issues of every project",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := listFlags{page: page, format: format}
			if err := f.validFormat(); err != nil {
				return err
			}
			s := view.NewProjectsState(app.Catalog, app.pageSize())
			s.IssuePage = page
			p := s.IssuesPage()
			app.logList("issues", p.Total)
			return writePage(cmd.OutOrStdout(), format, p,
				[]string{"ID", "Title", "Project", "Status", "Assignee", "Type", "Est", "Actual", "Variance"},
				func(r view.IssueRow) []string {
					return []string{
						r.ID, r.Title, r.ProjectName, r.Status, r.Assignee, r.WorkTypeName(),
						hours(r.Estimate), hours(r.ActualTime), fmt.Sprintf("%+.1fh", r.ActualTime-r.Estimate),
					}
				})
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number, starting at 1")
	cmd.Flags().StringVarP(&format, "format", "o", formatTable, "Output format: table or json")

	return cmd
}

func newProjectEntriesCmd(app *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List time logged against projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := view.NewProjectsState(app.Catalog, app.pageSize())
			if err := f.apply(s.EntriesLister()); err != nil {
				return err
			}
			page := s.TimeEntriesPage()
			app.logList("project_entries", page.Total)
			return writePage(cmd.OutOrStdout(), f.format, page,
				[]string{"Date", "Project", "Member", "Hours", "Description", "Issues"},
				func(e store.ProjectTimeEntry) []string {
					return []string{date(e.Date), e.ProjectName, e.MemberName, hours(e.Hours), e.Description, strings.Join(e.IssueIDs, " ")}
				})
		},
	}
	f.register(cmd, true)

	return cmd
}

func newTeamCmd(app *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "team",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := view.NewTeamState(app.Catalog, app.pageSize())
			if err := f.apply(s); err != nil {
				return err
			}
			page := s.Page()
			app.logList("team", page.Total)
			if err := writePage(cmd.OutOrStdout(), f.format, page,
				[]string{"Name", "Role", "Rate", "Hours", "Salary"},
				func(m store.TeamMember) []string {
					rate := money(m.Rate) + "/hr"
					if m.RateType == "monthly" {
						rate = money(m.Rate) + "/mo"
					}
					return []string{m.Name, m.Role, rate, hours(m.TotalHours), money(m.Salary)}
				}); err != nil {
				return err
			}
			if f.format == formatTable && page.Total > 0 {
				t := s.Totals()
				fmt.Fprintf(cmd.OutOrStdout(), "Total hours %s · Total salaries %s\n", hours(t.Hours), money(t.Salaries))
			}
			return nil
		},
	}
	f.register(cmd, false)

	return cmd
}

func newInvoicesCmd(app *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := view.NewInvoicesState(app.Catalog, app.pageSize())
			if err := f.apply(s); err != nil {
				return err
			}
			page := s.Page()
			app.logList("invoices", page.Total)
			if err := writePage(cmd.OutOrStdout(), f.format, page,
				[]string{"ID", "Client", "Project", "Amount", "Date", "Due", "Status"},
				func(inv store.Invoice) []string {
					return []string{inv.ID, inv.Client, inv.Project, money(inv.Amount), date(inv.Date), date(inv.DueDate), inv.Status}
				}); err != nil {
				return err
			}
			if f.format == formatTable && page.Total > 0 {
				st := s.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "Total %s · Paid %s · Pending %s · Overdue %s\n",
					money(st.Total), money(st.Paid), money(st.Pending), money(st.Overdue))
			}
			return nil
		},
	}
	f.register(cmd, true)

	return cmd
}

func newEntriesCmd(app *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List the time sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := view.NewTimeTrackingState(app.Catalog, app.pageSize())
			if err := f.apply(s); err != nil {
				return err
			}
			page := s.Page()
			app.logList("time", page.Total)
			if err := writePage(cmd.OutOrStdout(), f.format, page,
				[]string{"Date", "Project", "Member", "Duration", "Description"},
				func(e store.TimesheetEntry) []string {
					return []string{date(e.Date), e.Project, e.Member, e.Duration, e.Description}
				}); err != nil {
				return err
			}
			if f.format == formatTable && page.Total > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Total tracked %s\n", s.TotalTrackedLabel())
			}
			return nil
		},
	}
	f.register(cmd, true)

	return cmd
}

func newFinanceCmd(app *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Show the finance summary and records",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := view.NewFinanceState(app.Catalog, app.pageSize())
			if err := f.apply(s); err != nil {
				return err
			}
			sum := s.Summary()
			page := s.RecordsPage()
			app.logList("finance", page.Total)

			out := cmd.OutOrStdout()
			if f.format == formatJSON {
				return writeFinanceJSON(out, sum, page)
			}
			fmt.Fprintf(out, "Income %s · Expenses %s · Salaries %s · Profit %s · Waiting %s\n\n",
				money(sum.TotalIncome), money(sum.TotalExpenses), money(sum.TotalSalaries),
				money(sum.Profit), money(sum.AmountWaiting))
			return writePage(out, f.format, page,
				[]string{"Kind", "ID", "Label", "Amount", "Date", "Status"},
				func(r view.FinanceRecord) []string {
					return []string{string(r.Kind), r.ID, r.Label, money(r.Amount), date(r.Date), r.Status}
				})
		},
	}
	f.register(cmd, true)

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var dir, from, to string
	var formats []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write invoices, time entries and finance to CSV, JSON or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]export.Format, len(formats))
			for i, s := range formats {
				parsed[i] = export.Format(s)
			}

			r, err := view.NewDateRange(from, to)
			if err != nil {
				return err
			}
			invoices := view.NewInvoicesState(app.Catalog, 0)
			invoices.List().SetRange(r)
			projects := view.NewProjectsState(app.Catalog, app.pageSize())
			projects.Entries.SetRange(r)
			finance := view.NewFinanceState(app.Catalog, app.pageSize())
			finance.List().SetRange(r)

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
			paths, err := export.WriteAll(cmd.Context(), dir, export.Report{
				Invoices:   invoices.Invoices(),
				Entries:    projects.TimeEntries(),
				Summary:    finance.Summary(),
				Records:    finance.Records(),
				ExportedAt: time.Now(),
			}, parsed)
			if err != nil {
				app.logger().Error("export failed", log.FieldOperation, log.OpExport, log.FieldPath, dir, log.FieldError, err)
				return err
			}
			app.logger().Info("export finished",
				log.FieldOperation, log.OpExport, log.FieldPath, dir, log.FieldFormat, formats,
				log.FieldCount, len(paths), log.FieldSuccess, true)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write into")
	cmd.Flags().StringSliceVar(&formats, "format", []string{"csv", "json", "xlsx"}, "Formats to write: csv, json, xlsx")
	cmd.Flags().StringVar(&from, "from", "", "Earliest date, YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "Latest date, YYYY-MM-DD (inclusive)")

	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	form := auth.DemoForm()
	var signUp bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Try the demo sign-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.Auth
			if svc == nil {
				svc = auth.NewService(0, 0, app.Logger)
			}
			var res auth.Result
			if signUp {
				res = svc.SignUp(cmd.Context(), form)
			} else {
				res = svc.Login(cmd.Context(), form)
			}
			if !res.OK {
				return errors.New(res.Reason)
			}
			if signUp {
				fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", form.Email)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", form.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", form.Email, "Email address")
	cmd.Flags().StringVar(&form.Password, "password", form.Password, "Password")
	cmd.Flags().BoolVar(&signUp, "sign-up", false, "Create an account instead of signing in")
	cmd.Flags().StringVar(&form.Name, "name", "", "Name (sign-up)")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm", "", "Password again (sign-up)")

	return cmd
}

func hours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64) + "h"
}
