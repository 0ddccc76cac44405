package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldSuccess   = "success"
	FieldDraftID   = "draft_id"
	FieldKind      = "kind"
	FieldScreen    = "screen"
	FieldEmail     = "email"
	FieldPath      = "path"
	FieldFormat    = "format"
	FieldCount     = "count"
	FieldDuration  = "duration"
)

// Components
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentAuth    = "auth"
	ComponentTUI     = "tui"
	ComponentCLI     = "cli"
	ComponentExport  = "export"
	ComponentDrafts  = "drafts"
	ComponentTracker = "tracker"
)

// Operations
const (
	OpStartup  = "startup"
	OpLogin    = "login"
	OpSignUp   = "sign_up"
	OpPassword = "change_password"
	OpDraft    = "draft"
	OpSave     = "save"
	OpExport   = "export"
	OpList     = "list"
)

// LogFields is a builder for structured log attributes.
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithSuccess(ok bool) LogFields {
	f[FieldSuccess] = ok
	return f
}

func (f LogFields) With(key string, value any) LogFields {
	f[key] = value
	return f
}

// ToSlice converts the fields to slog key/value arguments.
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
