// Package dialog models the bulk-action dialogs of a view as an explicit
// state machine: Closed -> Draft -> Submitting -> Closed. A cancel goes from
// Draft to Closed and a failed submit returns to Draft. Only one dialog can be
// open at a time.
package dialog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// Kind names a dialog.
type Kind string

const (
	KindStatusUpdate Kind = "status-update"
	KindEventLink    Kind = "event-link"
	KindDispute      Kind = "dispute"
	KindAudit        Kind = "audit"
	KindMarkPaid     Kind = "mark-paid"
)

var kinds = []Kind{KindStatusUpdate, KindEventLink, KindDispute, KindAudit, KindMarkPaid}

func ParseKind(raw string) (Kind, error) {
	for _, k := range kinds {
		if strings.EqualFold(string(k), strings.TrimSpace(raw)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown dialog kind %q: %w", raw, apperrors.ErrValidation)
}

// State is the machine state.
type State string

const (
	StateClosed     State = "closed"
	StateDraft      State = "draft"
	StateSubmitting State = "submitting"
)

// Snapshot is a read-only copy of the machine for rendering.
type Snapshot struct {
	State     State    `json:"state"`
	Kind      Kind     `json:"kind,omitempty"`
	Targets   []string `json:"targets,omitempty"`
	Draft     Payload  `json:"draft,omitempty"`
	LastError string   `json:"lastError,omitempty"`
}

// Machine is the dialog state of one view. It is not safe for concurrent use;
// callers serialize access per view.
type Machine struct {
	state     State
	targets   []string
	draft     Payload
	lastError string
	validate  *validator.Validate
}

// New returns a closed machine validating drafts with v.
func New(v *validator.Validate) *Machine {
	if v == nil {
		v = NewValidator()
	}
	return &Machine{state: StateClosed, validate: v}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{State: m.state, LastError: m.lastError}
	if m.state != StateClosed {
		s.Kind = m.draft.Kind()
		s.Targets = append([]string(nil), m.targets...)
		s.Draft = m.draft.clone()
	}
	return s
}

// Open moves Closed -> Draft with a fresh payload for the given targets.
func (m *Machine) Open(targets []string, draft Payload) error {
	if m.state != StateClosed {
		return fmt.Errorf("%s dialog already open: %w", m.draft.Kind(), apperrors.ErrConflict)
	}
	if len(targets) == 0 {
		return fmt.Errorf("no invoices selected: %w", apperrors.ErrValidation)
	}
	if draft == nil {
		return fmt.Errorf("missing draft: %w", apperrors.ErrValidation)
	}
	m.state = StateDraft
	m.targets = append([]string(nil), targets...)
	m.draft = draft
	m.lastError = ""
	return nil
}

// Update edits the draft in place.
func (m *Machine) Update(p Patch) error {
	if m.state != StateDraft {
		return fmt.Errorf("update in state %s: %w", m.state, apperrors.ErrInvalidTransition)
	}
	m.draft.apply(p)
	return nil
}

// BeginSubmit validates the draft and moves Draft -> Submitting. A draft that
// fails validation stays in Draft and the error wraps apperrors.ErrValidation.
func (m *Machine) BeginSubmit() (Payload, []string, error) {
	if m.state != StateDraft {
		return nil, nil, fmt.Errorf("submit in state %s: %w", m.state, apperrors.ErrInvalidTransition)
	}
	if err := m.validate.Struct(m.draft); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, nil, fmt.Errorf("%s: %w", describe(verrs), apperrors.ErrValidation)
		}
		return nil, nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	m.state = StateSubmitting
	m.lastError = ""
	return m.draft.clone(), append([]string(nil), m.targets...), nil
}

// Complete moves Submitting -> Closed.
func (m *Machine) Complete() error {
	if m.state != StateSubmitting {
		return fmt.Errorf("complete in state %s: %w", m.state, apperrors.ErrInvalidTransition)
	}
	m.reset()
	return nil
}

// Fail moves Submitting -> Draft, keeping the draft for another attempt.
func (m *Machine) Fail(cause error) error {
	if m.state != StateSubmitting {
		return fmt.Errorf("fail in state %s: %w", m.state, apperrors.ErrInvalidTransition)
	}
	m.state = StateDraft
	if cause != nil {
		m.lastError = cause.Error()
	}
	return nil
}

// Cancel moves Draft -> Closed. Cancelling a closed dialog is a no-op.
func (m *Machine) Cancel() error {
	switch m.state {
	case StateClosed:
		return nil
	case StateDraft:
		m.reset()
		return nil
	}
	return fmt.Errorf("cancel in state %s: %w", m.state, apperrors.ErrInvalidTransition)
}

func (m *Machine) reset() {
	m.state = StateClosed
	m.targets = nil
	m.draft = nil
	m.lastError = ""
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
