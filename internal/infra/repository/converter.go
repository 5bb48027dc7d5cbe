package repository

import (
	"time"

	"arenaos/internal/infra/store"
)

// Record fields come back as `any`; these helpers normalize the numeric
// widths the store round-trips without panicking on absent fields.

func asString(rec store.Record, key string) string {
	s, _ := rec[key].(string)
	return s
}

func asInt(rec store.Record, key string) int {
	switch v := rec[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func asInt64(rec store.Record, key string) int64 {
	switch v := rec[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func asFloat(rec store.Record, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func asTime(rec store.Record, key string) time.Time {
	t, _ := rec[key].(time.Time)
	return t
}

func asTimePtr(rec store.Record, key string) *time.Time {
	if t, ok := rec[key].(time.Time); ok {
		return &t
	}
	return nil
}

func asIntSlice(rec store.Record, key string) []int {
	switch v := rec[key].(type) {
	case []int:
		out := make([]int, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]int, 0, len(v))
		for _, e := range v {
			switch n := e.(type) {
			case int:
				out = append(out, n)
			case float64:
				out = append(out, int(n))
			}
		}
		return out
	}
	return nil
}
