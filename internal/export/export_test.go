package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleReport() Report {
	invoices := []store.Invoice{
		{ID: "INV-001", Client: "Acme Corp", Project: "Website Redesign", Amount: 8500,
			Date: day("2024-01-05"), DueDate: day("2024-02-05"), Status: "paid", IncludeInFinance: true},
		{ID: "INV-002", Client: "Globex", Project: "Mobile App", Amount: 12000,
			Date: day("2024-01-10"), DueDate: day("2024-02-10"), Status: "sent"},
	}
	entries := []store.ProjectTimeEntry{
		{ID: 1, Date: day("2024-01-15"), ProjectID: 1, ProjectName: "Website Redesign",
			MemberID: 1, MemberName: "Alice", Hours: 1.5, Description: "worked on feature",
			IssueIDs: []string{"ISS-1", "ISS-2"}},
		{ID: 2, Date: day("2024-01-16"), ProjectID: 2, ProjectName: "Mobile App",
			MemberID: 2, MemberName: "Bob", Hours: 8},
	}
	sum := view.Summarize(nil, nil, nil, invoices)
	records := []view.FinanceRecord{
		{Kind: view.KindInvoice, ID: "INV-001", Label: "Acme Corp / Website Redesign",
			Amount: 8500, Date: day("2024-01-05"), Status: "paid"},
		{Kind: view.KindSalary, ID: "3", Label: "Carol (Designer)", Amount: 4000, Status: "paid"},
	}
	return Report{
		Invoices:   invoices,
		Entries:    entries,
		Summary:    sum,
		Records:    records,
		ExportedAt: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC),
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

// ============================================================
// CSV
// ============================================================

func TestToCSVInvoices(t *testing.T) {
	r := sampleReport()
	path := filepath.Join(t.TempDir(), "invoices.csv")

	if err := ToCSV(InvoiceSheet(r.Invoices), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("expected 3 rows (1 header + 2 data), got %d", len(records))
	}

	expectedHeader := []string{"ID", "Client", "Project", "Amount", "Date", "Due Date", "Status", "In Finance"}
	for i, h := range expectedHeader {
		if records[0][i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	row := records[1]
	if row[0] != "INV-001" || row[3] != "8500" || row[4] != "2024-01-05" || row[7] != "true" {
		t.Fatalf("unexpected first row %v", row)
	}
	if records[2][7] != "false" {
		t.Fatalf("excluded invoice should say false, got %q", records[2][7])
	}
}

func TestToCSVEntries(t *testing.T) {
	r := sampleReport()
	path := filepath.Join(t.TempDir(), "entries.csv")

	if err := ToCSV(EntrySheet(r.Entries), path); err != nil {
		t.Fatal(err)
	}

	records := readCSV(t, path)
	if records[1][4] != "1.5" {
		t.Fatalf("Hours = %q, want 1.5", records[1][4])
	}
	if records[1][5] != "01:30" {
		t.Fatalf("Duration = %q, want 01:30", records[1][5])
	}
	if records[1][7] != "ISS-1 ISS-2" {
		t.Fatalf("Issues = %q", records[1][7])
	}
	if records[2][7] != "" {
		t.Fatalf("entry without issues should be empty, got %q", records[2][7])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := ToCSV(InvoiceSheet(nil), path); err != nil {
		t.Fatal(err)
	}

	if records := readCSV(t, path); len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestToCSVBadPath(t *testing.T) {
	err := ToCSV(InvoiceSheet(nil), "/nonexistent/dir/file.csv")
	if err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestToCSVSpecialCharacters(t *testing.T) {
	entries := []store.ProjectTimeEntry{
		{ID: 1, Date: day("2024-01-15"), ProjectName: `Project "Special"`,
			Description: `notes with "quotes" and, commas`},
	}
	path := filepath.Join(t.TempDir(), "special.csv")

	if err := ToCSV(EntrySheet(entries), path); err != nil {
		t.Fatal(err)
	}

	records := readCSV(t, path)
	if records[1][2] != `Project "Special"` {
		t.Fatalf("project name mangled: %q", records[1][2])
	}
	if records[1][6] != `notes with "quotes" and, commas` {
		t.Fatalf("description mangled: %q", records[1][6])
	}
}

func TestFinanceSheet(t *testing.T) {
	r := sampleReport()
	sheet := FinanceSheet(r.Summary, r.Records)

	if len(sheet.Rows) != 5+len(r.Records) {
		t.Fatalf("expected 5 totals and %d records, got %d rows", len(r.Records), len(sheet.Rows))
	}
	if sheet.Rows[0][3] != int64(8500) {
		t.Fatalf("income total = %v, want 8500", sheet.Rows[0][3])
	}
	if sheet.Rows[4][3] != int64(0) {
		t.Fatalf("waiting = %v, want 0 for an excluded sent invoice", sheet.Rows[4][3])
	}
	salary := sheet.Rows[6]
	if salary[0] != "salary" || salary[4] != "" {
		t.Fatalf("salary row should have kind salary and no date, got %v", salary)
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	r := sampleReport()
	path := filepath.Join(t.TempDir(), "test.json")

	if err := ToJSON(r, path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var result jsonExport
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if result.ExportedAt != "2024-01-20T12:00:00Z" {
		t.Fatalf("exported_at = %q", result.ExportedAt)
	}
	if len(result.Invoices) != 2 || len(result.Entries) != 2 {
		t.Fatalf("got %d invoices and %d entries, want 2 and 2", len(result.Invoices), len(result.Entries))
	}

	e := result.Entries[0]
	if e.Project != "Website Redesign" || e.Member != "Alice" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Duration != "01:30" {
		t.Fatalf("Duration = %q, want 01:30", e.Duration)
	}
	if result.Finance.TotalIncome != 8500 || result.Finance.Profit != 8500 {
		t.Fatalf("unexpected finance totals %+v", result.Finance)
	}
	if len(result.Finance.Records) != 2 || result.Finance.Records[1].Date != "" {
		t.Fatalf("unexpected finance records %+v", result.Finance.Records)
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	if err := ToJSON(Report{}, path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"invoices": []`) {
		t.Fatalf("empty invoices should be an empty array: %s", data)
	}

	var result jsonExport
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatal(err)
	}
	if _, err := time.Parse(time.RFC3339, result.ExportedAt); err != nil {
		t.Fatalf("exported_at is not valid RFC3339: %q", result.ExportedAt)
	}
}

func TestToJSONBadPath(t *testing.T) {
	if err := ToJSON(Report{}, "/nonexistent/dir/file.json"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestToJSONPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pretty.json")
	if err := ToJSON(sampleReport(), path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "\n  ") {
		t.Fatal("JSON should be indented with spaces")
	}
}

// ============================================================
// XLSX
// ============================================================

func TestToXLSX(t *testing.T) {
	r := sampleReport()
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := ToXLSX(r.Sheets(), path); err != nil {
		t.Fatalf("ToXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	names := f.GetSheetList()
	want := []string{"Invoices", "Time Entries", "Finance"}
	if len(names) != len(want) {
		t.Fatalf("sheets = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sheets = %v, want %v", names, want)
		}
	}

	got, err := f.GetCellValue("Invoices", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "INV-001" {
		t.Fatalf("Invoices!A2 = %q, want INV-001", got)
	}
	got, _ = f.GetCellValue("Invoices", "D2")
	if got != "8500" {
		t.Fatalf("Invoices!D2 = %q, want 8500", got)
	}
	got, _ = f.GetCellValue("Time Entries", "C3")
	if got != "Mobile App" {
		t.Fatalf("Time Entries!C3 = %q, want Mobile App", got)
	}
}

func TestToXLSXBadPath(t *testing.T) {
	if err := ToXLSX(sampleReport().Sheets(), "/nonexistent/dir/file.xlsx"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// WriteAll
// ============================================================

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteAll(context.Background(), dir, sampleReport(), Formats)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	want := []string{
		"finance.csv",
		"invoices.csv",
		"studiodesk.json",
		"studiodesk.xlsx",
		"time_entries.csv",
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %d files", paths, len(want))
	}
	for i, name := range want {
		if paths[i] != filepath.Join(dir, name) {
			t.Fatalf("paths[%d] = %q, want %q", i, paths[i], name)
		}
		if _, err := os.Stat(paths[i]); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

func TestWriteAllUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteAll(context.Background(), dir, sampleReport(), []Format{FormatJSON, "pdf"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("nothing should be written on a bad format, found %d files", len(entries))
	}
}

func TestWriteAllRepeatedFormats(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(context.Background(), dir, sampleReport(),
		[]Format{FormatJSON, "JSON", FormatCSV, "csv", " Csv "})
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	want := []string{"finance.csv", "invoices.csv", "studiodesk.json", "time_entries.csv"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want each file once", paths)
	}
	for i, name := range want {
		if paths[i] != filepath.Join(dir, name) {
			t.Fatalf("paths[%d] = %q, want %q", i, paths[i], name)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "studiodesk.json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("json should be intact: %v", err)
	}
}

func TestWriteAllNoFormats(t *testing.T) {
	if _, err := WriteAll(context.Background(), t.TempDir(), sampleReport(), nil); err == nil {
		t.Fatal("expected error when no format is given")
	}
}

func TestWriteAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WriteAll(ctx, t.TempDir(), sampleReport(), []Format{FormatCSV})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestWriteAllBadDir(t *testing.T) {
	_, err := WriteAll(context.Background(), "/nonexistent/dir", sampleReport(), []Format{FormatJSON})
	if err == nil {
		t.Fatal("expected error for bad directory")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{" JSON ", FormatJSON, false},
		{"xlsx", FormatXLSX, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

// ============================================================
// formatHours (internal helper)
// ============================================================

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "00:00"},
		{0.25, "00:15"},
		{1, "01:00"},
		{1.5, "01:30"},
		{8.75, "08:45"},
		{24, "24:00"},
		{100.1, "100:06"},
	}

	for _, tt := range tests {
		got := formatHours(tt.hours)
		if got != tt.want {
			t.Errorf("formatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
