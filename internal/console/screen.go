package console

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadState is the list half of a screen's state machine.
type LoadState int

const (
	Idle LoadState = iota
	Loading
	Loaded
	LoadFailed
)

// FormState is the independent create/edit sub-state.
type FormState int

const (
	FormHidden FormState = iota
	FormEditing
	FormSubmitting
)

// ResourceClient is what the engine needs from a resource client. The rest
// client's Resource type satisfies it.
type ResourceClient[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id int64, payload T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Companion is a secondary collection a screen loads alongside its main list,
// e.g. the products screen loading categories for its select field. Companion
// loads are independent of the main list: a companion failure notifies but
// does not fail the screen.
type Companion struct {
	Name string
	Load func(ctx context.Context) (interface{}, error)
}

// FormContext is the input to a resource's payload builder: the validated
// form values, any loaded companion collections, and the id being edited
// (nil for create).
type FormContext struct {
	Values     map[string]interface{}
	Companions map[string]interface{}
	EditingID  *int64
}

// Config parameterizes one CRUD screen: which collection, how rows render,
// which fields the form carries, and how values become a payload.
type Config[T any] struct {
	Name       string // plural collection name, e.g. "categories"
	Singular   string // e.g. "category"
	Columns    []Column[T]
	Fields     []Field
	PageSize   int
	ID         func(row T) *int64
	Build      func(fc FormContext) (T, error)
	Fill       func(row T) map[string]interface{}
	Companions []Companion
}

// Screen is one instance of the generic CRUD engine. All four entity screens
// are instances of it. Safe for concurrent use; every blocking operation
// takes a context.
type Screen[T any] struct {
	cfg      Config[T]
	client   ResourceClient[T]
	notifier *Notifier
	table    *Table[T]
	form     *Form

	mu         sync.Mutex
	state      LoadState
	formState  FormState
	formErr    string
	editingID  *int64
	rows       []T
	companions map[string]interface{}
	gen        uint64
}

func NewScreen[T any](cfg Config[T], client ResourceClient[T], notifier *Notifier) *Screen[T] {
	return &Screen[T]{
		cfg:        cfg,
		client:     client,
		notifier:   notifier,
		table:      NewTable(cfg.Columns, cfg.PageSize),
		form:       NewForm(cfg.Fields),
		companions: make(map[string]interface{}),
	}
}

func (s *Screen[T]) Name() string     { return s.cfg.Name }
func (s *Screen[T]) Singular() string { return s.cfg.Singular }

// Columns returns the screen's column definitions.
func (s *Screen[T]) Columns() []Column[T] { return s.cfg.Columns }

// RowID extracts a row's id, nil when the record has none yet.
func (s *Screen[T]) RowID(row T) *int64 { return s.cfg.ID(row) }

// Fields returns the screen's form schema.
func (s *Screen[T]) Fields() []Field { return s.cfg.Fields }

// Filter returns the current filter query.
func (s *Screen[T]) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Filter()
}

// Sort returns the current sort column and direction.
func (s *Screen[T]) Sort() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Sort()
}

// Page returns the current page number.
func (s *Screen[T]) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Page()
}

// Activate loads the main list and all companion collections concurrently.
// The reads are independent and unordered; none depends on another's result.
func (s *Screen[T]) Activate(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Refresh(ctx)
		return nil
	})
	for _, comp := range s.cfg.Companions {
		comp := comp
		g.Go(func() error {
			s.loadCompanion(ctx, comp)
			return nil
		})
	}
	_ = g.Wait()
}

// Refresh reloads the whole collection. On failure the row snapshot is
// cleared, never left partially populated. A response that arrives after a
// newer refresh started is discarded.
func (s *Screen[T]) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.state = Loading
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	rows, err := s.client.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return // a newer load owns the screen now
	}
	if err != nil {
		s.state = LoadFailed
		s.rows = nil
		zap.L().Error("list failed", zap.String("resource", s.cfg.Name), zap.Error(err))
		s.notifier.Notify(LevelError, "Could not load %s", s.cfg.Name)
		return
	}
	s.rows = rows
	s.state = Loaded
}

func (s *Screen[T]) loadCompanion(ctx context.Context, comp Companion) {
	v, err := comp.Load(ctx)
	if err != nil {
		zap.L().Error("companion load failed",
			zap.String("resource", s.cfg.Name), zap.String("companion", comp.Name), zap.Error(err))
		s.notifier.Notify(LevelError, "Could not load %s", comp.Name)
		return
	}
	s.mu.Lock()
	s.companions[comp.Name] = v
	s.mu.Unlock()
}

// Companion returns a loaded companion collection, nil when absent.
func (s *Screen[T]) Companion(name string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companions[name]
}

// State returns the current load state.
func (s *Screen[T]) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Rows returns a copy of the loaded row snapshot.
func (s *Screen[T]) Rows() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.rows))
	copy(out, s.rows)
	return out
}

// SetFilter narrows the visible rows; pagination resets to the first page.
func (s *Screen[T]) SetFilter(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.SetFilter(q)
}

// SortBy orders the visible rows by a column.
func (s *Screen[T]) SortBy(col string, asc bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.SortBy(col, asc)
}

// SetPage moves the table to a page.
func (s *Screen[T]) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.SetPage(n)
}

// Visible returns the filtered, sorted, paged rows and the page count.
func (s *Screen[T]) Visible() ([]T, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Visible(s.rows)
}

// OpenCreate opens a blank form.
func (s *Screen[T]) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
	s.editingID = nil
	s.formErr = ""
	s.formState = FormEditing
}

// OpenEdit opens the form prefilled from an already-loaded row. It reports
// whether the row was found in the current snapshot.
func (s *Screen[T]) OpenEdit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		rid := s.cfg.ID(row)
		if rid == nil || *rid != id {
			continue
		}
		s.form.Reset()
		for name, v := range s.cfg.Fill(row) {
			s.form.Set(name, v)
		}
		// prefill is not user input
		s.form.touched = make(map[string]bool)
		s.form.errs = make(map[string]string)
		eid := id
		s.editingID = &eid
		s.formErr = ""
		s.formState = FormEditing
		return true
	}
	s.notifier.Notify(LevelError, "Could not find that %s", s.cfg.Singular)
	return false
}

// CloseForm hides and resets the form.
func (s *Screen[T]) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
	s.editingID = nil
	s.formErr = ""
	s.formState = FormHidden
}

// SetField stores one field value while the form is open.
func (s *Screen[T]) SetField(name string, raw interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.formState == FormHidden {
		return
	}
	s.form.Set(name, raw)
}

// FormSnapshot returns the form state for rendering. The returned form is a
// detached copy; it stays valid to read while other requests keep mutating
// the screen.
func (s *Screen[T]) FormSnapshot() (state FormState, editingID *int64, formErr string, form *Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formState, s.editingID, s.formErr, s.form.Clone()
}

// Submit validates, shapes the payload, and issues a single create or update
// followed by a full reload. An invalid form blocks submission locally with
// every field marked touched and no network call. A server failure keeps the
// form open with a message.
func (s *Screen[T]) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.formState != FormEditing {
		s.mu.Unlock()
		return
	}
	if !s.form.Validate() {
		s.formErr = "Please fix the highlighted fields"
		s.mu.Unlock()
		return
	}
	payload, err := s.cfg.Build(FormContext{
		Values:     s.form.Values(),
		Companions: s.companions,
		EditingID:  s.editingID,
	})
	if err != nil {
		s.formErr = err.Error()
		s.mu.Unlock()
		return
	}
	s.formState = FormSubmitting
	editing := s.editingID
	s.mu.Unlock()

	verb := "create"
	if editing != nil {
		_, err = s.client.Update(ctx, *editing, payload)
		verb = "update"
	} else {
		_, err = s.client.Create(ctx, payload)
	}

	s.mu.Lock()
	if err != nil {
		s.formState = FormEditing
		s.formErr = fmt.Sprintf("Could not %s %s", verb, s.cfg.Singular)
		zap.L().Error("submit failed",
			zap.String("resource", s.cfg.Name), zap.String("verb", verb), zap.Error(err))
		s.notifier.Notify(LevelError, "Could not %s %s", verb, s.cfg.Singular)
		s.mu.Unlock()
		return
	}
	s.formState = FormHidden
	s.form.Reset()
	s.editingID = nil
	s.formErr = ""
	s.mu.Unlock()

	s.notifier.Notify(LevelSuccess, "%s %sd", title(s.cfg.Singular), verb)
	s.Refresh(ctx)
}

// DeletePrompt is the confirmation dialog shown before deleting a record.
func (s *Screen[T]) DeletePrompt(id int64) Prompt {
	return Prompt{
		Title:       fmt.Sprintf("Delete %s", s.cfg.Singular),
		Message:     fmt.Sprintf("This will permanently delete %s #%d. This action cannot be undone.", s.cfg.Singular, id),
		ConfirmText: "Delete",
		Severity:    SeverityDanger,
	}
}

// Delete asks the confirmer first; only an affirmative decision issues the
// network call. Success reloads the list; either outcome of the call is
// reported as a notification. A negative or dismissed confirmation does
// nothing at all.
func (s *Screen[T]) Delete(ctx context.Context, id int64, confirmer Confirmer) {
	confirmed, err := confirmer.Confirm(ctx, s.DeletePrompt(id))
	if err != nil || !confirmed {
		return
	}
	if err := s.client.Delete(ctx, id); err != nil {
		zap.L().Error("delete failed",
			zap.String("resource", s.cfg.Name), zap.Int64("id", id), zap.Error(err))
		s.notifier.Notify(LevelError, "Could not delete %s", s.cfg.Singular)
		return
	}
	s.notifier.Notify(LevelSuccess, "%s deleted", title(s.cfg.Singular))
	s.Refresh(ctx)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
