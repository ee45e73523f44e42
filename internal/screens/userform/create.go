package userform

import (
	"context"
	"log/slog"
	"sync"

	"userdeck/internal/domain"
	"userdeck/internal/screens/scope"
)

// DefaultPicture is used when a new user is submitted without one.
const DefaultPicture = "https://randomuser.me/api/portraits/men/1.jpg"

// CreateState is the create screen snapshot. Created is set once Success is.
type CreateState struct {
	Loading bool
	Success bool
	Created *domain.UserDetail
	Error   string
}

// CreateHolder owns the create screen state.
type CreateHolder struct {
	creator domain.UserCreator
	log     *slog.Logger
	scope   *scope.Scope

	mu      sync.Mutex
	loading bool
	created *domain.UserDetail
	err     string
}

func NewCreateHolder(ctx context.Context, creator domain.UserCreator, log *slog.Logger) *CreateHolder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &CreateHolder{
		creator: creator,
		log:     log.With("screen", "create_user"),
		scope:   scope.New(ctx),
	}
}

func (h *CreateHolder) State() CreateState {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := CreateState{Loading: h.loading, Error: h.err}
	if h.created != nil {
		u := h.created.Clone()
		st.Success = true
		st.Created = &u
	}
	return st
}

func (h *CreateHolder) Updates() <-chan struct{} { return h.scope.Updates() }
func (h *CreateHolder) Wait()                    { h.scope.Wait() }
func (h *CreateHolder) Close()                   { h.scope.Close() }

// Submit validates f and, when valid, creates the user in the background. It
// returns the validation error, if any, which is also set as the screen
// error. Submits while a request is running are ignored.
func (h *CreateHolder) Submit(f domain.UserFields) error {
	if err := Validate(f); err != nil {
		h.setError(err.Error())
		return err
	}
	f = Normalize(f)
	if f.Picture == "" {
		f.Picture = DefaultPicture
	}
	user := domain.UserDetail{
		Title:       f.Title,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Picture:     f.Picture,
		Gender:      f.Gender,
		Email:       f.Email,
		DateOfBirth: f.DateOfBirth,
		Phone:       f.Phone,
	}

	h.mu.Lock()
	if h.scope.Done() || h.loading {
		h.mu.Unlock()
		return nil
	}
	h.loading = true
	h.err = ""
	h.mu.Unlock()
	h.scope.Notify()

	h.scope.Go(func(ctx context.Context) {
		res := h.creator.CreateUser(ctx, user)

		h.mu.Lock()
		if h.scope.Done() {
			h.mu.Unlock()
			return
		}
		h.loading = false
		switch {
		case res.IsSuccess():
			u := res.Value
			h.created = &u
			h.log.Info("user created", "id", u.ID)
		case res.IsError():
			h.err = submitMessage(res)
			h.log.Warn("create failed", "code", res.Code, "msg", res.Message)
		}
		h.mu.Unlock()
		h.scope.Notify()
	})
	return nil
}

// ClearError dismisses the current error message.
func (h *CreateHolder) ClearError() { h.setError("") }

func (h *CreateHolder) setError(msg string) {
	h.mu.Lock()
	h.err = msg
	h.mu.Unlock()
	h.scope.Notify()
}
