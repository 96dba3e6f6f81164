package postgres

import (
	"fmt"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
)

func defaultSettings() models.Settings {
	return models.Settings{
		ReminderTime:    constants.DefaultReminderTime,
		ReminderEnabled: constants.DefaultReminderEnabled,
		OpenAIModel:     constants.DefaultOpenAIModel,
	}
}

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingReminderTime:
			settings.ReminderTime = value
		case constants.SettingReminderEnabled:
			settings.ReminderEnabled = value == "true"
		case constants.SettingOpenAIModel:
			settings.OpenAIModel = value
		case constants.SettingDefaultUser:
			settings.DefaultUser = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := map[string]string{
		constants.SettingReminderTime:    settings.ReminderTime,
		constants.SettingReminderEnabled: fmt.Sprintf("%v", settings.ReminderEnabled),
		constants.SettingOpenAIModel:     settings.OpenAIModel,
		constants.SettingDefaultUser:     settings.DefaultUser,
	}
	for key, value := range pairs {
		if _, err := stmt.Exec(key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
