package settings

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"smart-summarizer/internal/config"
	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/engine"
	"smart-summarizer/internal/repository"
)

// Setting keys recognized by the service.
const (
	KeyShortPercentage  = "short_percentage"
	KeyMediumPercentage = "medium_percentage"
	KeyLongPercentage   = "long_percentage"
	KeyMaxInputWords    = "max_input_words"
	KeyRetentionDays    = "retention_days"
)

// Values holds the effective settings after merging defaults with
// repository overrides.
type Values struct {
	ShortPercentage  int
	MediumPercentage int
	LongPercentage   int
	MaxInputWords    int
	RetentionDays    int
}

// EngineSettings converts the length percentages into engine settings.
func (v Values) EngineSettings() engine.Settings {
	return engine.Settings{
		ShortPercentage:  v.ShortPercentage,
		MediumPercentage: v.MediumPercentage,
		LongPercentage:   v.LongPercentage,
	}
}

// Service handles business logic for settings operations.
type Service struct {
	Repo     repository.SettingRepository
	Defaults *config.DefaultsConfig
}

// NewService creates a settings service. A nil defaults falls back to the
// built-in configuration.
func NewService(repo repository.SettingRepository, defaults *config.DefaultsConfig) *Service {
	if defaults == nil {
		defaults = config.BuiltinDefaults()
	}
	return &Service{Repo: repo, Defaults: defaults}
}

// Effective returns the merged settings: YAML defaults overlaid with any
// values stored in the repository.
func (s *Service) Effective(ctx context.Context) (Values, error) {
	values := Values{
		ShortPercentage:  s.Defaults.Summarizer.ShortPercentage,
		MediumPercentage: s.Defaults.Summarizer.MediumPercentage,
		LongPercentage:   s.Defaults.Summarizer.LongPercentage,
		MaxInputWords:    s.Defaults.Summarizer.MaxInputWords,
		RetentionDays:    s.Defaults.Summarizer.RetentionDays,
	}

	stored, err := s.Repo.List(ctx)
	if err != nil {
		return Values{}, fmt.Errorf("list settings: %w", err)
	}

	for _, setting := range stored {
		n, err := strconv.Atoi(setting.Value)
		if err != nil {
			// Ignore malformed rows rather than failing every read.
			continue
		}
		switch setting.Key {
		case KeyShortPercentage:
			values.ShortPercentage = n
		case KeyMediumPercentage:
			values.MediumPercentage = n
		case KeyLongPercentage:
			values.LongPercentage = n
		case KeyMaxInputWords:
			values.MaxInputWords = n
		case KeyRetentionDays:
			values.RetentionDays = n
		}
	}

	return values, nil
}

// List returns all stored setting overrides.
func (s *Service) List(ctx context.Context) ([]*entity.Setting, error) {
	stored, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return stored, nil
}

// Update validates and stores a setting override.
func (s *Service) Update(ctx context.Context, key, value string) (*entity.Setting, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidValue, key)
	}

	switch key {
	case KeyShortPercentage, KeyMediumPercentage, KeyLongPercentage:
		if n < 5 || n > 95 {
			return nil, fmt.Errorf("%w: %s must be between 5 and 95", ErrInvalidValue, key)
		}
	case KeyMaxInputWords:
		if n < 100 || n > entity.MaxInputWords {
			return nil, fmt.Errorf("%w: %s must be between 100 and %d", ErrInvalidValue, key, entity.MaxInputWords)
		}
	case KeyRetentionDays:
		if n < 1 {
			return nil, fmt.Errorf("%w: %s must be positive", ErrInvalidValue, key)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}

	setting := &entity.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	if err := s.Repo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}
	return setting, nil
}
