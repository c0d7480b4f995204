package dashboard

import (
	"context"
	"sync"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/constants"
	"complaintbox/internal/shared/errors"
	"complaintbox/internal/shared/goroutine"
	"complaintbox/internal/shared/logger"
)

// EventType classifies an outbound engine event.
type EventType string

const (
	EventViewUpdated EventType = "view"
	EventAlert       EventType = "alert"
	EventNotice      EventType = "notice"
)

// Event is one message pushed to the dashboard session.
type Event struct {
	Type    EventType  `json:"type"`
	View    *ViewState `json:"view,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Lister loads the full complaint set, newest first.
type Lister interface {
	Execute(ctx context.Context) ([]*complaint.Complaint, error)
}

// ReadMarker persists a read-state transition.
type ReadMarker interface {
	Execute(ctx context.Context, id uint) error
}

// Deleter removes a complaint and its attachment.
type Deleter interface {
	Execute(ctx context.Context, id uint) error
}

// Engine is the per-session sync engine behind one dashboard connection.
// It owns a snapshot of the complaint set and the session's view
// parameters, reconciles the snapshot against the change feed, and
// pushes rendered view frames to the session.
//
// All state is confined to a single goroutine; the exported methods post
// commands into that goroutine and never touch state directly. Store
// reads and writes run on their own goroutines and post results back as
// commands, so a slow store never blocks view-parameter changes.
type Engine struct {
	lister  Lister
	marker  ReadMarker
	deleter Deleter
	feed    complaint.ChangeFeed
	logger  logger.Interface

	commands chan func()
	events   chan Event
	done     chan struct{}

	closeOnce sync.Once

	// ctx is the session context given to Start. Event-triggered reloads
	// run under it so no store call outlives the session.
	ctx context.Context

	// State below is owned by the run loop.
	snapshot []*complaint.Complaint
	params   ViewParams
	status   SyncStatus
	// pendingReads holds optimistic read-state patches not yet observed
	// in a store snapshot. Applied over every reconciled snapshot so a
	// reload racing a mark-read cannot flip the row back to unread.
	pendingReads map[uint]struct{}
	// loadInFlight and dirty implement depth-1 coalescing: any number of
	// change events arriving during a reload collapse into exactly one
	// follow-up reload.
	loadInFlight bool
	dirty        bool

	subscription complaint.Subscription
}

func NewEngine(
	lister Lister,
	marker ReadMarker,
	deleter Deleter,
	feed complaint.ChangeFeed,
	log logger.Interface,
) *Engine {
	return &Engine{
		lister:       lister,
		marker:       marker,
		deleter:      deleter,
		feed:         feed,
		logger:       log,
		commands:     make(chan func(), 64),
		events:       make(chan Event, 16),
		done:         make(chan struct{}),
		params:       ViewParams{Page: constants.DefaultPage},
		status:       StatusLoading,
		pendingReads: make(map[uint]struct{}),
	}
}

// Start subscribes to the change feed, launches the run loop, and kicks
// off the initial load. The engine stops when ctx is cancelled or Close
// is called.
func (e *Engine) Start(ctx context.Context) error {
	sub, err := e.feed.Subscribe(ctx, func(event complaint.ChangeEvent) {
		e.post(func() { e.handleChangeEvent(event) })
	})
	if err != nil {
		return err
	}
	e.subscription = sub
	e.ctx = ctx

	goroutine.SafeGo(e.logger, "dashboard-engine", func() {
		e.run(ctx)
	})

	e.post(func() {
		e.emitView()
		e.startLoad(ctx)
	})

	return nil
}

// Events returns the outbound event stream for the session.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// SetFilter replaces the free-text filter and resets to the first page.
func (e *Engine) SetFilter(term string) {
	e.post(func() {
		e.params.Filter = term
		e.params.Page = constants.DefaultPage
		e.emitView()
	})
}

// SetUnreadOnly toggles the unread-only view and resets to the first page.
func (e *Engine) SetUnreadOnly(unreadOnly bool) {
	e.post(func() {
		e.params.UnreadOnly = unreadOnly
		e.params.Page = constants.DefaultPage
		e.emitView()
	})
}

// SetPage moves to the requested page. Out-of-range values clamp.
func (e *Engine) SetPage(page int) {
	e.post(func() {
		e.params.Page = page
		e.emitView()
	})
}

// MarkRead optimistically marks a complaint read in the local snapshot,
// pushes the updated view immediately, then confirms against the store.
// On store failure the patch rolls back and the session gets an alert.
func (e *Engine) MarkRead(ctx context.Context, id uint) {
	e.post(func() {
		target := e.find(id)
		if target == nil || !target.IsNew() {
			return
		}

		e.pendingReads[id] = struct{}{}
		e.patchRead(id)
		e.emitView()

		goroutine.SafeGo(e.logger, "dashboard-mark-read", func() {
			err := e.marker.Execute(ctx, id)
			e.post(func() { e.finishMarkRead(id, err) })
		})
	})
}

// Delete removes a complaint through the store. The view catches up via
// the resulting change event; only failures surface directly.
func (e *Engine) Delete(ctx context.Context, id uint) {
	e.post(func() {
		goroutine.SafeGo(e.logger, "dashboard-delete", func() {
			err := e.deleter.Execute(ctx, id)
			if err == nil {
				return
			}
			e.post(func() {
				e.logger.Warnw("delete failed", "complaint_id", id, "error", err)
				e.emitAlert(deleteFailureMessage(err))
			})
		})
	})
}

// Refresh forces a full reload outside the change feed.
func (e *Engine) Refresh(ctx context.Context) {
	e.post(func() { e.requestLoad(ctx) })
}

// Close stops the engine. Idempotent; results of in-flight store calls
// arriving after Close are discarded.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		if e.subscription != nil {
			e.subscription.Close()
		}
		close(e.done)
	})
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.events)
	for {
		select {
		case <-ctx.Done():
			e.Close()
			return
		case <-e.done:
			return
		case cmd := <-e.commands:
			cmd()
		}
	}
}

// post schedules a command on the run loop. Commands posted after Close
// are dropped.
func (e *Engine) post(cmd func()) {
	select {
	case <-e.done:
	case e.commands <- cmd:
	}
}

func (e *Engine) handleChangeEvent(event complaint.ChangeEvent) {
	if event.Type == complaint.EventInsert {
		e.emit(Event{Type: EventNotice, Message: "New complaint received"})
	}
	e.requestLoad(e.ctx)
}

// requestLoad starts a reload, or flags one to follow if a reload is
// already running.
func (e *Engine) requestLoad(ctx context.Context) {
	if e.loadInFlight {
		e.dirty = true
		return
	}
	e.startLoad(ctx)
}

func (e *Engine) startLoad(ctx context.Context) {
	e.loadInFlight = true
	if e.status != StatusLoading {
		e.status = StatusReconciling
	}

	goroutine.SafeGo(e.logger, "dashboard-load", func() {
		complaints, err := e.lister.Execute(ctx)
		e.post(func() { e.finishLoad(ctx, complaints, err) })
	})
}

func (e *Engine) finishLoad(ctx context.Context, complaints []*complaint.Complaint, err error) {
	e.loadInFlight = false

	if err != nil {
		e.logger.Errorw("snapshot reload failed", "error", err)
		// Keep the previous snapshot; a store error is recoverable and
		// the session keeps whatever it last saw.
		e.status = StatusSynced
		e.emitAlert("Failed to refresh complaints")
	} else {
		e.applySnapshot(complaints)
		e.status = StatusSynced
	}

	if e.dirty {
		e.dirty = false
		e.startLoad(ctx)
		return
	}

	e.emitView()
}

// applySnapshot installs a fresh store snapshot, re-applying pending
// optimistic patches and dropping patches the store has confirmed.
func (e *Engine) applySnapshot(complaints []*complaint.Complaint) {
	for i, c := range complaints {
		if _, pending := e.pendingReads[c.ID()]; !pending {
			continue
		}
		if c.IsNew() {
			patched := c.Clone()
			patched.MarkRead()
			complaints[i] = patched
		} else {
			delete(e.pendingReads, c.ID())
		}
	}
	e.snapshot = complaints
}

// patchRead swaps the snapshot entry for a read clone, leaving the
// entity the store layer returned untouched.
func (e *Engine) patchRead(id uint) {
	for i, c := range e.snapshot {
		if c.ID() != id {
			continue
		}
		patched := c.Clone()
		patched.MarkRead()
		e.snapshot[i] = patched
		return
	}
}

func (e *Engine) finishMarkRead(id uint, err error) {
	if err == nil {
		// Patch stays until a snapshot shows the store agrees.
		return
	}

	delete(e.pendingReads, id)
	if target := e.find(id); target != nil {
		e.rollbackRead(target)
	}

	e.logger.Warnw("mark-read failed, rolling back",
		"complaint_id", id,
		"error", err,
	)
	e.emitView()
	e.emitAlert("Failed to mark complaint as read")
}

// rollbackRead restores the unread flag on an optimistically patched
// entity by replacing it with an unread clone.
func (e *Engine) rollbackRead(target *complaint.Complaint) {
	for i, c := range e.snapshot {
		if c.ID() != target.ID() {
			continue
		}
		restored, err := complaint.ReconstructComplaint(
			c.ID(), c.Name(), c.Email(), c.Subject(), c.Body(),
			true, c.AttachmentURL(), c.CreatedAt(),
		)
		if err != nil {
			return
		}
		e.snapshot[i] = restored
		return
	}
}

func (e *Engine) find(id uint) *complaint.Complaint {
	for _, c := range e.snapshot {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

func (e *Engine) emitView() {
	view := computeView(e.snapshot, e.params, e.status)
	e.params.Page = view.Page
	e.emit(Event{Type: EventViewUpdated, View: &view})
}

func (e *Engine) emitAlert(message string) {
	e.emit(Event{Type: EventAlert, Message: message})
}

// emit delivers an event without ever blocking the run loop: if the
// session cannot keep up, the oldest buffered event is dropped in favor
// of the newer one.
func (e *Engine) emit(event Event) {
	select {
	case <-e.done:
		return
	default:
	}

	for {
		select {
		case e.events <- event:
			return
		default:
			select {
			case <-e.events:
			default:
			}
		}
	}
}

func deleteFailureMessage(err error) string {
	if errors.IsNotFoundError(err) {
		return "Complaint no longer exists"
	}
	return "Failed to delete complaint"
}
