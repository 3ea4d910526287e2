// Package session persists the logged-in user and the customer profile as
// JSON values under fixed keys of a key-value store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"delivery-app/models"
)

const (
	UserKey            = "deliveryApp_user"
	CustomerDetailsKey = "deliveryApp_customerDetails"
)

// ErrNotFound is returned by KV.Get for a missing key.
var ErrNotFound = errors.New("session key not found")

// KV is a string-keyed byte store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Manager reads and writes the typed values behind the fixed keys.
type Manager struct {
	kv KV
}

func NewManager(kv KV) *Manager {
	return &Manager{kv: kv}
}

func (m *Manager) load(ctx context.Context, key string, v any) (bool, error) {
	raw, err := m.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (m *Manager) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := m.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// LoadUser returns the persisted session, if any.
func (m *Manager) LoadUser(ctx context.Context) (models.Session, bool, error) {
	var s models.Session
	ok, err := m.load(ctx, UserKey, &s)
	return s, ok, err
}

func (m *Manager) SaveUser(ctx context.Context, s models.Session) error {
	return m.save(ctx, UserKey, s)
}

func (m *Manager) ClearUser(ctx context.Context) error {
	if err := m.kv.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("delete %s: %w", UserKey, err)
	}
	return nil
}

// LoadProfile returns the persisted customer details, if any.
func (m *Manager) LoadProfile(ctx context.Context) (models.CustomerDetails, bool, error) {
	var d models.CustomerDetails
	ok, err := m.load(ctx, CustomerDetailsKey, &d)
	return d, ok, err
}

// SaveProfile writes the profile. A profile without a name is not written.
func (m *Manager) SaveProfile(ctx context.Context, d models.CustomerDetails) error {
	if d.Name == "" {
		return nil
	}
	return m.save(ctx, CustomerDetailsKey, d)
}
