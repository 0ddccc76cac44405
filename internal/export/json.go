package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Invoices   []jsonInvoice `json:"invoices"`
	Entries    []jsonEntry   `json:"entries"`
	Finance    jsonFinance   `json:"finance"`
}

type jsonInvoice struct {
	ID               string `json:"id"`
	Client           string `json:"client"`
	Project          string `json:"project"`
	Amount           int64  `json:"amount"`
	Date             string `json:"date"`
	DueDate          string `json:"due_date"`
	Status           string `json:"status"`
	IncludeInFinance bool   `json:"include_in_finance"`
}

type jsonEntry struct {
	ID          int64    `json:"id"`
	Date        string   `json:"date"`
	ProjectID   int64    `json:"project_id"`
	Project     string   `json:"project"`
	MemberID    int64    `json:"member_id"`
	Member      string   `json:"member"`
	Hours       float64  `json:"hours"`
	Duration    string   `json:"duration"`
	Description string   `json:"description,omitempty"`
	Issues      []string `json:"issues,omitempty"`
}

type jsonFinance struct {
	TotalIncome   int64        `json:"total_income"`
	TotalExpenses int64        `json:"total_expenses"`
	TotalSalaries int64        `json:"total_salaries"`
	Profit        int64        `json:"profit"`
	AmountWaiting int64        `json:"amount_waiting"`
	Records       []jsonRecord `json:"records"`
}

type jsonRecord struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
}

func ToJSON(r Report, path string) error {
	exportedAt := r.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now()
	}
	export := jsonExport{
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		Invoices:   []jsonInvoice{},
		Entries:    []jsonEntry{},
		Finance: jsonFinance{
			TotalIncome:   r.Summary.TotalIncome,
			TotalExpenses: r.Summary.TotalExpenses,
			TotalSalaries: r.Summary.TotalSalaries,
			Profit:        r.Summary.Profit,
			AmountWaiting: r.Summary.AmountWaiting,
			Records:       []jsonRecord{},
		},
	}

	for _, inv := range r.Invoices {
		export.Invoices = append(export.Invoices, jsonInvoice{
			ID:               inv.ID,
			Client:           inv.Client,
			Project:          inv.Project,
			Amount:           inv.Amount,
			Date:             formatDate(inv.Date),
			DueDate:          formatDate(inv.DueDate),
			Status:           inv.Status,
			IncludeInFinance: inv.IncludeInFinance,
		})
	}
	for _, e := range r.Entries {
		export.Entries = append(export.Entries, jsonEntry{
			ID:          e.ID,
			Date:        formatDate(e.Date),
			ProjectID:   e.ProjectID,
			Project:     e.ProjectName,
			MemberID:    e.MemberID,
			Member:      e.MemberName,
			Hours:       e.Hours,
			Duration:    formatHours(e.Hours),
			Description: e.Description,
			Issues:      e.IssueIDs,
		})
	}
	for _, rec := range r.Records {
		export.Finance.Records = append(export.Finance.Records, jsonRecord{
			Kind:   string(rec.Kind),
			ID:     rec.ID,
			Label:  rec.Label,
			Amount: rec.Amount,
			Date:   formatDate(rec.Date),
			Status: rec.Status,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
