package userlist

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"userdeck/internal/apierror"
	"userdeck/internal/domain"
	"userdeck/internal/screens/scope"
)

// State is the read-only projection handed to the screen. Users is a fresh
// slice on every call.
type State struct {
	Users         []domain.UserPreview
	Loading       bool
	LoadingMore   bool
	HasMorePages  bool
	Error         string
	DeleteRequest domain.UserID
}

// Holder owns the list screen state.
type Holder struct {
	lister  domain.UserLister
	deleter domain.UserDeleter
	log     *slog.Logger
	scope   *scope.Scope

	mu          sync.Mutex
	pages       map[int][]domain.UserPreview
	currentPage int
	totalPages  int
	loading     bool
	loadingMore bool
	generation  uint64
	pending     map[domain.UserID]struct{}
	deleteReq   domain.UserID
	err         string
}

// New builds the holder and starts loading the first page.
func New(ctx context.Context, lister domain.UserLister, deleter domain.UserDeleter, log *slog.Logger) *Holder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &Holder{
		lister:  lister,
		deleter: deleter,
		log:     log.With("screen", "user_list"),
		scope:   scope.New(ctx),
		pages:   make(map[int][]domain.UserPreview),
		pending: make(map[domain.UserID]struct{}),
	}
	h.mu.Lock()
	gen := h.beginFirstPageLocked()
	h.mu.Unlock()
	h.fetchFirstPage(gen)
	return h
}

// State returns a snapshot of the screen state.
func (h *Holder) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return State{
		Users:         h.visibleLocked(),
		Loading:       h.loading,
		LoadingMore:   h.loadingMore,
		HasMorePages:  h.currentPage+1 < h.totalPages,
		Error:         h.err,
		DeleteRequest: h.deleteReq,
	}
}

// Updates signals state changes; read State after each signal.
func (h *Holder) Updates() <-chan struct{} { return h.scope.Updates() }

// Wait blocks until all in-flight work has finished.
func (h *Holder) Wait() { h.scope.Wait() }

// Close cancels in-flight work; no state changes are applied afterwards.
func (h *Holder) Close() { h.scope.Close() }

// LoadMore appends the next page. It is a no-op while a load is in flight or
// when no further pages exist.
func (h *Holder) LoadMore() {
	h.mu.Lock()
	if h.scope.Done() || h.loading || h.loadingMore || h.currentPage+1 >= h.totalPages {
		h.mu.Unlock()
		return
	}
	next := h.currentPage + 1
	if _, ok := h.pages[next]; ok {
		h.currentPage = next
		h.mu.Unlock()
		h.log.Debug("page served from cache", "page", next)
		h.scope.Notify()
		return
	}
	h.loadingMore = true
	gen := h.generation
	h.mu.Unlock()
	h.scope.Notify()

	h.scope.Go(func(ctx context.Context) {
		res := h.lister.ListUsers(ctx, next)

		h.mu.Lock()
		if !h.currentLocked(gen) {
			h.mu.Unlock()
			h.log.Debug("discarding stale page", "page", next, "generation", gen)
			return
		}
		h.loadingMore = false
		switch {
		case res.IsSuccess():
			h.pages[next] = slices.Clone(res.Value.Items)
			h.currentPage = next
			h.totalPages = res.Value.PageCount()
		case res.IsError():
			h.err = apierror.ForResult(res)
			h.log.Warn("load more failed", "page", next, "code", res.Code, "msg", res.Message)
		}
		h.mu.Unlock()
		h.scope.Notify()
	})
}

// Refresh drops the page cache and pending deletions and reloads page 0.
// Responses to requests issued before the refresh are discarded.
func (h *Holder) Refresh() {
	h.mu.Lock()
	if h.scope.Done() {
		h.mu.Unlock()
		return
	}
	h.generation++
	h.pages = make(map[int][]domain.UserPreview)
	h.pending = make(map[domain.UserID]struct{})
	h.currentPage = 0
	h.totalPages = 0
	h.loadingMore = false
	gen := h.beginFirstPageLocked()
	h.mu.Unlock()
	h.fetchFirstPage(gen)
}

// ClearError dismisses the current error message.
func (h *Holder) ClearError() {
	h.mu.Lock()
	h.err = ""
	h.mu.Unlock()
	h.scope.Notify()
}

// RequestDelete records id as awaiting confirmation. Nothing is hidden yet.
func (h *Holder) RequestDelete(id domain.UserID) {
	h.mu.Lock()
	h.deleteReq = id
	h.mu.Unlock()
	h.scope.Notify()
}

// DismissDelete cancels a pending confirmation.
func (h *Holder) DismissDelete() {
	h.RequestDelete("")
}

// ConfirmDelete deletes the id recorded by RequestDelete, if any.
func (h *Holder) ConfirmDelete() {
	h.mu.Lock()
	id := h.deleteReq
	h.deleteReq = ""
	h.mu.Unlock()
	if id == "" {
		h.scope.Notify()
		return
	}
	h.DeleteConfirmed(id)
}

// DeleteConfirmed hides id immediately and deletes it on the server. Success
// clears the error message; failure un-hides the row and sets it.
func (h *Holder) DeleteConfirmed(id domain.UserID) {
	h.mu.Lock()
	if h.scope.Done() {
		h.mu.Unlock()
		return
	}
	h.pending[id] = struct{}{}
	if h.deleteReq == id {
		h.deleteReq = ""
	}
	gen := h.generation
	h.mu.Unlock()
	h.scope.Notify()

	h.scope.Go(func(ctx context.Context) {
		res := h.deleter.DeleteUser(ctx, id)

		h.mu.Lock()
		if h.scope.Done() {
			h.mu.Unlock()
			return
		}
		switch {
		case res.IsSuccess():
			for p, users := range h.pages {
				h.pages[p] = slices.DeleteFunc(users, func(u domain.UserPreview) bool { return u.ID == id })
			}
			h.err = ""
			h.log.Info("user deleted", "id", id)
		case res.IsError():
			if gen == h.generation {
				delete(h.pending, id)
			}
			h.err = apierror.ForResult(res)
			h.log.Warn("delete failed, restoring row", "id", id, "code", res.Code, "msg", res.Message)
		}
		h.mu.Unlock()
		h.scope.Notify()
	})
}

// beginFirstPageLocked marks the first page as loading and returns the
// generation the fetch belongs to.
func (h *Holder) beginFirstPageLocked() uint64 {
	h.loading = true
	h.err = ""
	return h.generation
}

func (h *Holder) fetchFirstPage(gen uint64) {
	h.scope.Notify()
	h.scope.Go(func(ctx context.Context) {
		res := h.lister.ListUsers(ctx, 0)

		h.mu.Lock()
		if !h.currentLocked(gen) {
			h.mu.Unlock()
			h.log.Debug("discarding stale first page", "generation", gen)
			return
		}
		h.loading = false
		h.currentPage = 0
		switch {
		case res.IsSuccess():
			h.pages = map[int][]domain.UserPreview{0: slices.Clone(res.Value.Items)}
			h.totalPages = res.Value.PageCount()
		case res.IsError():
			h.pages = make(map[int][]domain.UserPreview)
			h.totalPages = 0
			h.err = apierror.ForResult(res)
			h.log.Warn("first page failed", "code", res.Code, "msg", res.Message)
		}
		h.mu.Unlock()
		h.scope.Notify()
	})
}

// currentLocked reports whether a response tagged gen may still be applied.
func (h *Holder) currentLocked(gen uint64) bool {
	return !h.scope.Done() && gen == h.generation
}

func (h *Holder) visibleLocked() []domain.UserPreview {
	out := make([]domain.UserPreview, 0)
	seen := make(map[domain.UserID]struct{})
	for p := 0; p <= h.currentPage; p++ {
		for _, u := range h.pages[p] {
			if _, hidden := h.pending[u.ID]; hidden {
				continue
			}
			if _, dup := seen[u.ID]; dup {
				continue
			}
			seen[u.ID] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}
