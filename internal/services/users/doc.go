// Package users holds the one-operation use cases over domain.UserRepository.
//
// Each use case wraps exactly one repository call. They carry no business
// logic of their own; screens depend on the narrow domain.UserLister,
// domain.UserGetter, ... contracts they satisfy rather than on the repository.
package users
