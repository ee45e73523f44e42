package app

import (
	"log/slog"
	"net/http"

	"userdeck/internal/domain"
	"userdeck/internal/repository"
	userssvc "userdeck/internal/services/users"
	"userdeck/internal/store"
	"userdeck/internal/userapi"
)

// Wire bundles all stores, use cases and clients for the CLI.
type Wire struct {
	Credentials domain.CredentialStore
	Settings    domain.SettingsStore
	Client      domain.UserServiceClient
	Repository  *repository.UserRepository

	List   domain.UserLister
	Get    domain.UserGetter
	Create domain.UserCreator
	Update domain.UserUpdater
	Delete domain.UserDeleter

	HTTP *http.Client
	Log  *slog.Logger
}

// NewWire constructs the dependency graph from cfg. A nil logger discards
// output.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	// File-based stores
	credentials := store.NewCredentialFileStore(cfg.Home)
	settings := store.NewSettingsFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = userapi.NewHTTPClient(cfg.Timeout)
	}

	client := userapi.NewHTTP(cfg.BaseURL, cfg.AppID, httpClient)
	repo := repository.New(client, cfg.PageSize, log.With("component", "repository"))

	ucLog := log.With("component", "usecase")
	return &Wire{
		Credentials: credentials,
		Settings:    settings,
		Client:      client,
		Repository:  repo,
		List:        userssvc.NewListUsers(repo, ucLog),
		Get:         userssvc.NewGetUserDetail(repo, ucLog),
		Create:      userssvc.NewCreateUser(repo, ucLog),
		Update:      userssvc.NewUpdateUser(repo, ucLog),
		Delete:      userssvc.NewDeleteUser(repo, ucLog),
		HTTP:        httpClient,
		Log:         log,
	}, nil
}
