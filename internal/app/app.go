package app

import (
	"context"

	"userdeck/internal/domain"
	"userdeck/internal/screens/userdetail"
	"userdeck/internal/screens/userform"
	"userdeck/internal/screens/userlist"
)

// App hands out screen state holders bound to the wired use cases. Each
// holder must be closed by the caller when its screen is left.
type App struct {
	w *Wire
}

func New(w *Wire) *App { return &App{w: w} }

// Wire returns the dependency graph the app was built from.
func (a *App) Wire() *Wire { return a.w }

// UserList opens the list screen; the first page starts loading at once.
func (a *App) UserList(ctx context.Context) *userlist.Holder {
	return userlist.New(ctx, a.w.List, a.w.Delete, a.w.Log)
}

// UserDetail opens the detail screen and starts loading id.
func (a *App) UserDetail(ctx context.Context, id domain.UserID) *userdetail.Holder {
	h := userdetail.New(ctx, a.w.Get, a.w.Delete, a.w.Log)
	h.Load(id)
	return h
}

// CreateUser opens an empty create form.
func (a *App) CreateUser(ctx context.Context) *userform.CreateHolder {
	return userform.NewCreateHolder(ctx, a.w.Create, a.w.Log)
}

// EditUser opens the edit form and starts loading id.
func (a *App) EditUser(ctx context.Context, id domain.UserID) *userform.EditHolder {
	h := userform.NewEditHolder(ctx, a.w.Get, a.w.Update, a.w.Log)
	h.Load(id)
	return h
}
