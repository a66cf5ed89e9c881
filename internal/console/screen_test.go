package console

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thing struct {
	ID   *int64
	Name string
}

type fakeClient struct {
	mu        sync.Mutex
	rows      []thing
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCount int
	creates   []thing
	updates   []thing
	deletes   []int64
}

func (f *fakeClient) List(context.Context) ([]thing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCount++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeClient) Create(_ context.Context, payload thing) (thing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return thing{}, f.createErr
	}
	f.creates = append(f.creates, payload)
	return payload, nil
}

func (f *fakeClient) Update(_ context.Context, id int64, payload thing) (thing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return thing{}, f.updateErr
	}
	payload.ID = &id
	f.updates = append(f.updates, payload)
	return payload, nil
}

func (f *fakeClient) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func thingConfig() Config[thing] {
	return Config[thing]{
		Name:     "things",
		Singular: "thing",
		PageSize: 10,
		Columns: []Column[thing]{
			{Name: "id", Label: "ID", Value: func(t thing) interface{} {
				if t.ID == nil {
					return 0
				}
				return *t.ID
			}},
			{Name: "name", Label: "Name", Value: func(t thing) interface{} { return t.Name }},
		},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text, Rules: "required"},
		},
		ID: func(t thing) *int64 { return t.ID },
		Build: func(fc FormContext) (thing, error) {
			return thing{ID: fc.EditingID, Name: fc.Values["name"].(string)}, nil
		},
		Fill: func(t thing) map[string]interface{} {
			return map[string]interface{}{"name": t.Name}
		},
	}
}

func newTestScreen(client ResourceClient[thing]) (*Screen[thing], *[]Notification) {
	notifier := NewNotifier(EventBus.New())
	var got []Notification
	_ = notifier.Subscribe(func(n Notification) { got = append(got, n) })
	return NewScreen(thingConfig(), client, notifier), &got
}

func id(v int64) *int64 { return &v }

func TestScreenRefreshLoads(t *testing.T) {
	client := &fakeClient{rows: []thing{{id(1), "a"}, {id(2), "b"}}}
	s, _ := newTestScreen(client)

	assert.Equal(t, Idle, s.State())
	s.Refresh(context.Background())

	assert.Equal(t, Loaded, s.State())
	assert.Len(t, s.Rows(), 2)
}

func TestScreenRefreshFailureLeavesNoPartialRows(t *testing.T) {
	client := &fakeClient{rows: []thing{{id(1), "a"}}}
	s, notes := newTestScreen(client)
	s.Refresh(context.Background())
	require.Len(t, s.Rows(), 1)

	client.mu.Lock()
	client.listErr = assert.AnError
	client.mu.Unlock()
	s.Refresh(context.Background())

	assert.Equal(t, LoadFailed, s.State())
	assert.Empty(t, s.Rows())
	require.NotEmpty(t, *notes)
	last := (*notes)[len(*notes)-1]
	assert.Equal(t, LevelError, last.Level)
	assert.Equal(t, "Could not load things", last.Message)
}

func TestScreenSubmitInvalidFormSendsNothing(t *testing.T) {
	client := &fakeClient{}
	s, _ := newTestScreen(client)

	s.OpenCreate()
	s.Submit(context.Background())

	state, _, formErr, form := s.FormSnapshot()
	assert.Equal(t, FormEditing, state)
	assert.NotEmpty(t, formErr)
	assert.True(t, form.Touched("name"))
	assert.Empty(t, client.creates)
}

func TestScreenSubmitCreateReloads(t *testing.T) {
	client := &fakeClient{}
	s, notes := newTestScreen(client)

	s.OpenCreate()
	s.SetField("name", "new thing")
	before := client.listCount
	s.Submit(context.Background())

	state, _, _, _ := s.FormSnapshot()
	assert.Equal(t, FormHidden, state)
	require.Len(t, client.creates, 1)
	assert.Equal(t, "new thing", client.creates[0].Name)
	assert.Equal(t, before+1, client.listCount)
	require.NotEmpty(t, *notes)
	assert.Equal(t, "Thing created", (*notes)[0].Message)
}

func TestScreenSubmitServerErrorKeepsFormOpen(t *testing.T) {
	client := &fakeClient{createErr: assert.AnError}
	s, notes := newTestScreen(client)

	s.OpenCreate()
	s.SetField("name", "x")
	s.Submit(context.Background())

	state, _, formErr, _ := s.FormSnapshot()
	assert.Equal(t, FormEditing, state)
	assert.Equal(t, "Could not create thing", formErr)
	require.NotEmpty(t, *notes)
	assert.Equal(t, LevelError, (*notes)[0].Level)
}

func TestScreenEditSubmitsUpdate(t *testing.T) {
	client := &fakeClient{rows: []thing{{id(7), "old name"}}}
	s, _ := newTestScreen(client)
	s.Refresh(context.Background())

	require.True(t, s.OpenEdit(7))
	_, editingID, _, form := s.FormSnapshot()
	require.NotNil(t, editingID)
	assert.Equal(t, int64(7), *editingID)
	assert.Equal(t, "old name", form.Get("name"))
	assert.False(t, form.Touched("name"))

	s.SetField("name", "new name")
	s.Submit(context.Background())

	require.Len(t, client.updates, 1)
	assert.Equal(t, "new name", client.updates[0].Name)
	assert.Empty(t, client.creates)
}

func TestScreenOpenEditUnknownID(t *testing.T) {
	client := &fakeClient{rows: []thing{{id(1), "a"}}}
	s, notes := newTestScreen(client)
	s.Refresh(context.Background())

	assert.False(t, s.OpenEdit(999))
	require.NotEmpty(t, *notes)
	assert.Equal(t, LevelError, (*notes)[0].Level)
}

func TestScreenDeleteRequiresConfirmation(t *testing.T) {
	client := &fakeClient{rows: []thing{{id(3), "a"}}}
	s, _ := newTestScreen(client)

	s.Delete(context.Background(), 3, Decision(false))
	assert.Empty(t, client.deletes)

	s.Delete(context.Background(), 3, Decision(true))
	assert.Equal(t, []int64{3}, client.deletes)
}

func TestScreenDeleteSuccessReloads(t *testing.T) {
	client := &fakeClient{rows: []thing{{id(3), "a"}}}
	s, notes := newTestScreen(client)

	before := client.listCount
	s.Delete(context.Background(), 3, Decision(true))

	assert.Equal(t, before+1, client.listCount)
	require.NotEmpty(t, *notes)
	assert.Equal(t, "Thing deleted", (*notes)[0].Message)
}

func TestScreenDeleteFailureNotifiesWithoutReload(t *testing.T) {
	client := &fakeClient{deleteErr: assert.AnError}
	s, notes := newTestScreen(client)

	before := client.listCount
	s.Delete(context.Background(), 3, Decision(true))

	assert.Equal(t, before, client.listCount)
	require.NotEmpty(t, *notes)
	assert.Equal(t, "Could not delete thing", (*notes)[0].Message)
}

func TestScreenDeletePrompt(t *testing.T) {
	s, _ := newTestScreen(&fakeClient{})
	p := s.DeletePrompt(12)

	assert.Equal(t, "Delete thing", p.Title)
	assert.Contains(t, p.Message, "#12")
	assert.Equal(t, SeverityDanger, p.Severity)
	confirm, cancel := p.Labels()
	assert.Equal(t, "Delete", confirm)
	assert.Equal(t, "Cancel", cancel)
}

// gatedClient lets a test decide when each List call resolves, so responses
// can be forced to land out of order.
type gatedClient struct {
	fakeClient
	calls chan chan []thing
}

func (g *gatedClient) List(context.Context) ([]thing, error) {
	inner := make(chan []thing)
	g.calls <- inner
	return <-inner, nil
}

func TestScreenDiscardsStaleListResponse(t *testing.T) {
	gc := &gatedClient{calls: make(chan chan []thing, 2)}
	s, _ := newTestScreen(gc)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); s.Refresh(context.Background()) }()
	first := <-gc.calls
	go func() { defer wg.Done(); s.Refresh(context.Background()) }()
	second := <-gc.calls

	// the newer load resolves first
	second <- []thing{{id(1), "fresh"}}
	assert.Eventually(t, func() bool { return s.State() == Loaded }, time.Second, time.Millisecond)

	// the stale response lands afterwards and must be discarded
	first <- []thing{{id(9), "stale"}}
	wg.Wait()

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "fresh", rows[0].Name)
	assert.Equal(t, Loaded, s.State())
}

func TestFormSnapshotIsDetached(t *testing.T) {
	s, _ := newTestScreen(&fakeClient{})
	s.OpenCreate()
	s.SetField("name", "before")

	_, _, _, form := s.FormSnapshot()
	s.SetField("name", "after")

	assert.Equal(t, "before", form.Get("name"))
}

func TestFormSnapshotReadableDuringConcurrentEdits(t *testing.T) {
	s, _ := newTestScreen(&fakeClient{})
	s.OpenCreate()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			s.SetField("name", "edit")
		}
	}()
	for i := 0; i < 1000; i++ {
		_, _, _, form := s.FormSnapshot()
		_ = form.Get("name")
		_ = form.Touched("name")
		_ = form.FieldError("name")
	}
	<-done
}

func TestScreenActivateLoadsCompanions(t *testing.T) {
	cfg := thingConfig()
	cfg.Companions = []Companion{{
		Name: "labels",
		Load: func(context.Context) (interface{}, error) { return []string{"x", "y"}, nil },
	}}
	notifier := NewNotifier(EventBus.New())
	s := NewScreen(cfg, &fakeClient{}, notifier)

	s.Activate(context.Background())

	labels, ok := s.Companion("labels").([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, labels)
	assert.Equal(t, Loaded, s.State())
}

func TestScreenCompanionFailureDoesNotFailScreen(t *testing.T) {
	cfg := thingConfig()
	cfg.Companions = []Companion{{
		Name: "labels",
		Load: func(context.Context) (interface{}, error) { return nil, assert.AnError },
	}}
	notifier := NewNotifier(EventBus.New())
	var got []Notification
	_ = notifier.Subscribe(func(n Notification) { got = append(got, n) })
	s := NewScreen(cfg, &fakeClient{rows: []thing{{id(1), "a"}}}, notifier)

	s.Activate(context.Background())

	assert.Equal(t, Loaded, s.State())
	assert.Nil(t, s.Companion("labels"))
	require.NotEmpty(t, got)
	assert.Equal(t, "Could not load labels", got[len(got)-1].Message)
}
