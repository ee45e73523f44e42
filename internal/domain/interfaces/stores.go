package interfaces

import domaintypes "userdeck/internal/domain/types"

// CredentialStore keeps the service app-id encrypted at rest.
type CredentialStore interface {
	SaveAppID(passphrase, appID string) error
	LoadAppID(passphrase string) (string, error)
	DeleteAppID() error
}

// SettingsStore persists client preferences.
type SettingsStore interface {
	SaveSettings(settings domaintypes.Settings) error
	LoadSettings() (domaintypes.Settings, bool, error)
}
