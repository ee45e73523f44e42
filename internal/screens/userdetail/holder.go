// Package userdetail is the state holder behind the single-user screen.
//
// The screen loads one record, can ask for delete confirmation and, once the
// delete succeeds, reports Deleted so the caller can navigate away.
package userdetail

import (
	"context"
	"log/slog"
	"sync"

	"userdeck/internal/apierror"
	"userdeck/internal/domain"
	"userdeck/internal/screens/scope"
)

// State is the snapshot handed to the screen.
type State struct {
	User            *domain.UserDetail
	Loading         bool
	Error           string
	DeleteRequested bool
	Deleted         bool
}

// Holder owns the detail screen state.
type Holder struct {
	getter  domain.UserGetter
	deleter domain.UserDeleter
	log     *slog.Logger
	scope   *scope.Scope

	mu        sync.Mutex
	id        domain.UserID
	user      *domain.UserDetail
	loading   bool
	err       string
	requested bool
	deleted   bool
	loadSeq   uint64
}

// New builds an idle holder; call Load to fetch a record.
func New(ctx context.Context, getter domain.UserGetter, deleter domain.UserDeleter, log *slog.Logger) *Holder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Holder{
		getter:  getter,
		deleter: deleter,
		log:     log.With("screen", "user_detail"),
		scope:   scope.New(ctx),
	}
}

// State returns a copy of the screen state.
func (h *Holder) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := State{
		Loading:         h.loading,
		Error:           h.err,
		DeleteRequested: h.requested,
		Deleted:         h.deleted,
	}
	if h.user != nil {
		u := h.user.Clone()
		st.User = &u
	}
	return st
}

func (h *Holder) Updates() <-chan struct{} { return h.scope.Updates() }
func (h *Holder) Wait()                    { h.scope.Wait() }
func (h *Holder) Close()                   { h.scope.Close() }

// Load fetches id. A later Load supersedes an earlier one still in flight.
func (h *Holder) Load(id domain.UserID) {
	h.mu.Lock()
	if h.scope.Done() {
		h.mu.Unlock()
		return
	}
	h.loadSeq++
	seq := h.loadSeq
	h.id = id
	h.loading = true
	h.err = ""
	h.mu.Unlock()
	h.scope.Notify()

	h.scope.Go(func(ctx context.Context) {
		res := h.getter.GetUser(ctx, id)

		h.mu.Lock()
		if h.scope.Done() || seq != h.loadSeq {
			h.mu.Unlock()
			return
		}
		h.loading = false
		switch {
		case res.IsSuccess():
			u := res.Value
			h.user = &u
		case res.IsError():
			h.user = nil
			h.err = apierror.ForResult(res)
			h.log.Warn("load failed", "id", id, "code", res.Code, "msg", res.Message)
		}
		h.mu.Unlock()
		h.scope.Notify()
	})
}

// RequestDelete opens the confirmation dialog.
func (h *Holder) RequestDelete() { h.setRequested(true) }

// DismissDelete closes the confirmation dialog.
func (h *Holder) DismissDelete() { h.setRequested(false) }

func (h *Holder) setRequested(v bool) {
	h.mu.Lock()
	h.requested = v
	h.mu.Unlock()
	h.scope.Notify()
}

// Delete removes the loaded user. It is a no-op before a record is loaded or
// while another request is running.
func (h *Holder) Delete() {
	h.mu.Lock()
	if h.scope.Done() || h.loading || h.user == nil || h.deleted {
		h.mu.Unlock()
		return
	}
	id := h.user.ID
	h.requested = false
	h.loading = true
	h.err = ""
	h.mu.Unlock()
	h.scope.Notify()

	h.scope.Go(func(ctx context.Context) {
		res := h.deleter.DeleteUser(ctx, id)

		h.mu.Lock()
		if h.scope.Done() {
			h.mu.Unlock()
			return
		}
		h.loading = false
		switch {
		case res.IsSuccess():
			h.deleted = true
			h.log.Info("user deleted", "id", id)
		case res.IsError():
			h.err = apierror.ForResult(res)
			h.log.Warn("delete failed", "id", id, "code", res.Code, "msg", res.Message)
		}
		h.mu.Unlock()
		h.scope.Notify()
	})
}

// ClearError dismisses the current error message.
func (h *Holder) ClearError() {
	h.mu.Lock()
	h.err = ""
	h.mu.Unlock()
	h.scope.Notify()
}
