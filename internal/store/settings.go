package store

import "fmt"

// GetSetting returns the stored value for key. A key that was never written
// is an error; callers with a sensible default use GetSettingOr.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

// GetSettingOr returns the stored value for key, falling back when the key
// is missing or holds an empty value. An empty value counts as unset so a
// blanked-out row behaves like a first run.
func (s *Store) GetSettingOr(key, fallback string) string {
	value, err := s.GetSetting(key)
	if err != nil || value == "" {
		return fallback
	}
	return value
}

// SetSetting writes key, inserting or overwriting as needed.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// GetAllSettings returns every stored key/value pair, ordered by key for a
// stable settings view.
func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
