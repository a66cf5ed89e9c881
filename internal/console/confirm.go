package console

import "context"

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

// Prompt describes a yes/no confirmation dialog. Severity only affects
// presentation. The dialog has no side effects of its own.
type Prompt struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Severity    Severity
}

// Labels returns the confirm and cancel button labels with defaults applied.
func (p Prompt) Labels() (confirm, cancel string) {
	confirm, cancel = p.ConfirmText, p.CancelText
	if confirm == "" {
		confirm = "Confirm"
	}
	if cancel == "" {
		cancel = "Cancel"
	}
	return confirm, cancel
}

// Confirmer resolves a prompt to a single boolean decision. Screens use it
// exclusively as the gate before delete calls.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

// Decision is a Confirmer carrying an already-made decision, e.g. the answer
// posted back from a rendered dialog.
type Decision bool

func (d Decision) Confirm(context.Context, Prompt) (bool, error) {
	return bool(d), nil
}
