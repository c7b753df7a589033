package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"whisperchat_server/models"
)

// SettingsService holds the settings panel switches
type SettingsService struct {
	mu       sync.Mutex
	settings models.Settings
}

func NewSettingsService() *SettingsService {
	return &SettingsService{settings: models.DefaultSettings()}
}

// Get returns the current switches
func (s *SettingsService) Get(ctx context.Context) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Toggle inverts the named switch
func (s *SettingsService) Toggle(ctx context.Context, name string) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	field, err := settingField(&s.settings, name)
	if err != nil {
		return models.Settings{}, err
	}
	*field = !*field
	log.Printf("⚙️ Setting %s toggled to %v", name, *field)
	return s.settings, nil
}

// Set assigns the named switch
func (s *SettingsService) Set(ctx context.Context, name string, value bool) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	field, err := settingField(&s.settings, name)
	if err != nil {
		return models.Settings{}, err
	}
	*field = value
	log.Printf("⚙️ Setting %s set to %v", name, value)
	return s.settings, nil
}

func settingField(s *models.Settings, name string) (*bool, error) {
	switch name {
	case models.SettingUseBiometrics:
		return &s.UseBiometrics, nil
	case models.SettingAppLock:
		return &s.AppLock, nil
	case models.SettingHideLastSeen:
		return &s.HideLastSeen, nil
	case models.SettingHideReadReceipts:
		return &s.HideReadReceipts, nil
	case models.SettingEnableNotifications:
		return &s.EnableNotifications, nil
	}
	return nil, fmt.Errorf("%w: unknown setting %q", ErrInvalidInput, name)
}
