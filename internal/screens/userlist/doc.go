// Package userlist is the state holder behind the paginated user list screen.
//
// The holder presents a growing, de-duplicated, ordered sequence of user
// previews backed by the remote paginated source. It supports pull-to-refresh,
// infinite scroll and optimistic row removal on delete.
//
// # State
//
// Pages are cached by index. The visible list is the concatenation of the
// cached pages 0..current, with ids pending deletion filtered out and
// duplicate ids dropped (first occurrence wins).
//
// # Concurrency
//
// Every action starts at most one goroutine through the holder's scope. The
// loadingMore flag drops re-entrant LoadMore calls, and each fetch is tagged
// with the generation it was issued for: Refresh bumps the generation so a
// response that raced it is discarded instead of written into the fresh
// cache. After Close no response is applied.
//
// # Optimistic delete
//
// DeleteConfirmed hides the row immediately, then calls the service. On
// success the id is removed from every cached page; on failure it is
// un-hidden and the error message is set.
package userlist
