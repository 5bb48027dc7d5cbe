package repository

import (
	"log/slog"

	"arenaos/internal/infra/store"
)

// WatchChanges tails the store's change feed for the financially
// sensitive tables and logs every mutation. Returns a function that
// detaches all subscriptions.
func WatchChanges(s *store.Store) func() {
	tables := []string{tableBookings, tableTransactions}

	unsubs := make([]func(), 0, len(tables))
	for _, table := range tables {
		unsubs = append(unsubs, s.OnChange(table, logChange))
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

func logChange(c store.Change) {
	attrs := []any{
		"table", c.Table,
		"kind", string(c.Kind),
		"id", c.Record["id"],
	}
	if status, ok := c.Record["status"]; ok {
		attrs = append(attrs, "status", status)
	}
	slog.Debug("record changed", attrs...)
}
