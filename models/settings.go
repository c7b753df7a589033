package models

// Settings holds the switches on the settings panel
type Settings struct {
	UseBiometrics       bool `json:"useBiometrics"`
	AppLock             bool `json:"appLock"`
	HideLastSeen        bool `json:"hideLastSeen"`
	HideReadReceipts    bool `json:"hideReadReceipts"`
	EnableNotifications bool `json:"enableNotifications"`
}

// Setting names as used in routes
const (
	SettingUseBiometrics       = "useBiometrics"
	SettingAppLock             = "appLock"
	SettingHideLastSeen        = "hideLastSeen"
	SettingHideReadReceipts    = "hideReadReceipts"
	SettingEnableNotifications = "enableNotifications"
)

// DefaultSettings mirrors the client's initial switch positions
func DefaultSettings() Settings {
	return Settings{
		UseBiometrics:       true,
		EnableNotifications: true,
	}
}
