package userform

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"userdeck/internal/apierror"
	"userdeck/internal/domain"
	"userdeck/internal/screens/scope"
)

// ErrNotLoaded is returned by EditHolder.Submit before a record is loaded.
var ErrNotLoaded = errors.New("userform: no user loaded")

// EditState is the edit screen snapshot.
type EditState struct {
	User    *domain.UserDetail
	Loading bool
	Success bool
	Error   string
}

// EditHolder owns the edit screen state. The email of the loaded record is
// kept on submit whatever the form says.
type EditHolder struct {
	getter  domain.UserGetter
	updater domain.UserUpdater
	log     *slog.Logger
	scope   *scope.Scope

	mu      sync.Mutex
	user    *domain.UserDetail
	loading bool
	success bool
	err     string
}

func NewEditHolder(ctx context.Context, getter domain.UserGetter, updater domain.UserUpdater, log *slog.Logger) *EditHolder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &EditHolder{
		getter:  getter,
		updater: updater,
		log:     log.With("screen", "edit_user"),
		scope:   scope.New(ctx),
	}
}

func (h *EditHolder) State() EditState {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := EditState{Loading: h.loading, Success: h.success, Error: h.err}
	if h.user != nil {
		u := h.user.Clone()
		st.User = &u
	}
	return st
}

func (h *EditHolder) Updates() <-chan struct{} { return h.scope.Updates() }
func (h *EditHolder) Wait()                    { h.scope.Wait() }
func (h *EditHolder) Close()                   { h.scope.Close() }

// Load fetches the record to edit.
func (h *EditHolder) Load(id domain.UserID) {
	if !h.begin() {
		return
	}
	h.scope.Go(func(ctx context.Context) {
		res := h.getter.GetUser(ctx, id)

		h.mu.Lock()
		if h.scope.Done() {
			h.mu.Unlock()
			return
		}
		h.loading = false
		switch {
		case res.IsSuccess():
			u := res.Value
			h.user = &u
		case res.IsError():
			h.err = apierror.ForResult(res)
			h.log.Warn("load failed", "id", id, "code", res.Code, "msg", res.Message)
		}
		h.mu.Unlock()
		h.scope.Notify()
	})
}

// Submit validates f, merges it into the loaded record and updates it in the
// background. Validation errors and ErrNotLoaded are returned and also set as
// the screen error.
func (h *EditHolder) Submit(f domain.UserFields) error {
	h.mu.Lock()
	if h.user == nil {
		h.mu.Unlock()
		h.setError(ErrNotLoaded.Error())
		return ErrNotLoaded
	}
	user := *h.user
	h.mu.Unlock()

	f.Email = user.Email
	if err := Validate(f); err != nil {
		h.setError(err.Error())
		return err
	}
	f = Normalize(f)
	user.Title = f.Title
	user.FirstName = f.FirstName
	user.LastName = f.LastName
	user.Gender = f.Gender
	user.DateOfBirth = f.DateOfBirth
	user.Phone = f.Phone
	if f.Picture != "" {
		user.Picture = f.Picture
	}

	if !h.begin() {
		return nil
	}
	h.scope.Go(func(ctx context.Context) {
		res := h.updater.UpdateUser(ctx, user)

		h.mu.Lock()
		if h.scope.Done() {
			h.mu.Unlock()
			return
		}
		h.loading = false
		switch {
		case res.IsSuccess():
			u := res.Value
			h.user = &u
			h.success = true
			h.log.Info("user updated", "id", u.ID)
		case res.IsError():
			h.err = submitMessage(res)
			h.log.Warn("update failed", "id", user.ID, "code", res.Code, "msg", res.Message)
		}
		h.mu.Unlock()
		h.scope.Notify()
	})
	return nil
}

// ClearError dismisses the current error message.
func (h *EditHolder) ClearError() { h.setError("") }

// begin marks a request as running. It reports false when one already is or
// the screen is closed.
func (h *EditHolder) begin() bool {
	h.mu.Lock()
	if h.scope.Done() || h.loading {
		h.mu.Unlock()
		return false
	}
	h.loading = true
	h.success = false
	h.err = ""
	h.mu.Unlock()
	h.scope.Notify()
	return true
}

func (h *EditHolder) setError(msg string) {
	h.mu.Lock()
	h.err = msg
	h.mu.Unlock()
	h.scope.Notify()
}
