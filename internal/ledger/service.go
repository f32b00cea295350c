// Package ledger implements the store behind the demo banking tool:
// three collections (accounts, transactions, notifications) held in
// memory, seeded with defaults on first run, and written back to a
// storage.KV after every mutation.
package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/passbook-dev/passbook/internal/model"
	"github.com/passbook-dev/passbook/internal/reltime"
	"github.com/passbook-dev/passbook/internal/storage"
)

// Storage keys for the three collections.
const (
	keyAccounts      = "accounts"
	keyTransactions  = "transactions"
	keyNotifications = "notifications"
)

// backfillStep spaces synthesized timestamps for records that were
// persisted before timestamps existed (index 0 = newest).
const backfillStep = time.Hour

// Service owns the three collections and persists all of them through
// the KV after every mutation. It is not safe for concurrent use; the
// host drives it from a single goroutine.
type Service struct {
	kv  storage.KV
	now func() time.Time

	accounts      map[string]model.Account
	transactions  []model.Transaction
	notifications []model.Notification

	subscribers []func(Event)
}

// New creates a Service backed by kv. Collections are empty until Load.
func New(kv storage.KV) *Service {
	return &Service{
		kv:       kv,
		now:      time.Now,
		accounts: make(map[string]model.Account),
	}
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(kv storage.KV, now func() time.Time) *Service {
	s := New(kv)
	s.now = now
	return s
}

// Load reads the three collections from storage. A collection that is
// missing or fails to parse falls back to its seed on its own; bad data
// in one collection never blocks the other two. Legacy records without
// timestamps are then backfilled by position.
func (s *Service) Load() error {
	accounts := make(map[string]model.Account)
	if !s.loadKey(keyAccounts, &accounts) {
		accounts = defaultAccounts()
	}
	s.accounts = accounts

	var txns []model.Transaction
	if !s.loadKey(keyTransactions, &txns) {
		txns = defaultTransactions(s.now())
	}
	s.transactions = txns

	var notes []model.Notification
	if !s.loadKey(keyNotifications, &notes) {
		notes = defaultNotifications(s.now())
	}
	s.notifications = notes

	return s.backfill()
}

// loadKey reports whether key held parseable data for v.
func (s *Service) loadKey(key string, v any) bool {
	data, found, err := s.kv.Get(key)
	if err != nil || !found {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// backfill assigns position-based timestamps to records that have none
// and persists when anything changed.
func (s *Service) backfill() error {
	now := s.now()
	changed := false

	for i := range s.transactions {
		t := &s.transactions[i]
		if t.Timestamp != 0 {
			continue
		}
		ts := now.Add(-time.Duration(i) * backfillStep)
		t.Timestamp = ts.UnixMilli()
		t.Date = reltime.String(now, ts)
		changed = true
	}
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.Timestamp != 0 {
			continue
		}
		ts := now.Add(-time.Duration(i) * backfillStep)
		n.Timestamp = ts.UnixMilli()
		n.Time = reltime.String(now, ts)
		changed = true
	}

	if !changed {
		return nil
	}
	return s.Persist()
}

// Persist writes all three collections under their fixed keys. The
// writes are sequential; there is no atomicity across keys, so a crash
// mid-way leaves later keys at their last persisted value.
func (s *Service) Persist() error {
	if err := s.persistKey(keyAccounts, s.accounts); err != nil {
		return err
	}
	if err := s.persistKey(keyTransactions, s.transactions); err != nil {
		return err
	}
	return s.persistKey(keyNotifications, s.notifications)
}

func (s *Service) persistKey(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Set(key, data); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

// Accounts returns the accounts collection keyed by account key.
func (s *Service) Accounts() map[string]model.Account { return s.accounts }

// Account returns the account stored under key.
func (s *Service) Account(key string) (model.Account, bool) {
	a, ok := s.accounts[key]
	return a, ok
}

// Transactions returns the statement, newest first.
func (s *Service) Transactions() []model.Transaction { return s.transactions }

// Notifications returns the notifications, newest first.
func (s *Service) Notifications() []model.Notification { return s.notifications }

// RefreshTimestamps recomputes the cached Date/Time display strings
// from each record's stored timestamp. Timestamps themselves never
// change, and nothing is written to storage; refreshed labels reach
// disk with the next persist.
func (s *Service) RefreshTimestamps() {
	now := s.now()
	for i := range s.transactions {
		t := &s.transactions[i]
		if t.Timestamp != 0 {
			t.Date = reltime.String(now, time.UnixMilli(t.Timestamp))
		}
	}
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.Timestamp != 0 {
			n.Time = reltime.String(now, time.UnixMilli(n.Timestamp))
		}
	}
	s.emit(EventTransactions, EventNotifications)
}
