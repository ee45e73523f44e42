package userlist_test

import (
	"context"
	"sync"

	"userdeck/internal/domain"
)

// fakeService serves fixed pages and lets a test hold individual calls open
// until it releases them.
type fakeService struct {
	mu         sync.Mutex
	pages      map[int]domain.Result[domain.PagedResult]
	listCalls  []int
	listGates  map[int]chan struct{}
	deletes    map[domain.UserID]domain.Result[domain.UserID]
	deleteGate chan struct{}
	deleted    []domain.UserID
}

func newFakeService(pageSize int, ids ...string) *fakeService {
	f := &fakeService{
		pages:     make(map[int]domain.Result[domain.PagedResult]),
		listGates: make(map[int]chan struct{}),
		deletes:   make(map[domain.UserID]domain.Result[domain.UserID]),
	}
	for p := 0; p*pageSize < len(ids) || p == 0; p++ {
		end := min((p+1)*pageSize, len(ids))
		items := make([]domain.UserPreview, 0, pageSize)
		for _, id := range ids[p*pageSize : end] {
			items = append(items, preview(id))
		}
		f.pages[p] = domain.Success(domain.PagedResult{Items: items, Page: p, Limit: pageSize, Total: len(ids)})
	}
	return f
}

func preview(id string) domain.UserPreview {
	return domain.UserPreview{ID: domain.UserID(id), FirstName: "User", LastName: id}
}

func (f *fakeService) setPage(page int, res domain.Result[domain.PagedResult]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[page] = res
}

// block makes subsequent ListUsers(page) calls wait until the returned
// channel is closed.
func (f *fakeService) block(page int) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.listGates[page] = ch
	return ch
}

func (f *fakeService) blockDeletes() chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteGate = make(chan struct{})
	return f.deleteGate
}

func (f *fakeService) failDelete(id domain.UserID, code domain.ErrorCode, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes[id] = domain.Failure[domain.UserID](code, msg)
}

func (f *fakeService) calls(page int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.listCalls {
		if p == page {
			n++
		}
	}
	return n
}

func (f *fakeService) ListUsers(ctx context.Context, page int) domain.Result[domain.PagedResult] {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, page)
	gate := f.listGates[page]
	res, ok := f.pages[page]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return domain.Failure[domain.PagedResult](domain.CodeUnknown, "Request cancelled")
		}
	}
	if !ok {
		return domain.Failure[domain.PagedResult](domain.CodeResourceNotFound, "User not found")
	}
	return res
}

func (f *fakeService) DeleteUser(ctx context.Context, id domain.UserID) domain.Result[domain.UserID] {
	f.mu.Lock()
	gate := f.deleteGate
	res, failed := f.deletes[id]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return domain.Failure[domain.UserID](domain.CodeUnknown, "Request cancelled")
		}
	}
	if failed {
		return res
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, id)
	f.mu.Unlock()
	return domain.Success(id)
}
