package booking

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

var (
	ErrInvalidHour     = errors.New("start hour must be within 0-23")
	ErrZeroDate        = errors.New("booking date is required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Slot is the atomic unit of availability: one resource-day-hour cell.
// The date half is always normalized to the start of its calendar day
// in UTC so two slots on the same day compare equal regardless of how
// the caller produced the timestamp.
type Slot struct {
	date time.Time
	hour int
}

func NewSlot(date time.Time, hour int) (Slot, error) {
	if date.IsZero() {
		return Slot{}, ErrZeroDate
	}
	if hour < 0 || hour > 23 {
		return Slot{}, ErrInvalidHour
	}
	day := now.New(date.UTC()).BeginningOfDay()
	return Slot{date: day, hour: hour}, nil
}

func (s Slot) Date() time.Time {
	return s.date
}

func (s Slot) Hour() int {
	return s.hour
}

// StartAt is the wall-clock start of the slot.
func (s Slot) StartAt() time.Time {
	return s.date.Add(time.Duration(s.hour) * time.Hour)
}

// DateString renders the calendar day the way the record store keys it.
func (s Slot) DateString() string {
	return s.date.Format("2006-01-02")
}

// Shift returns the slot n hours later on the same day. Multi-hour
// requests expand into consecutive slots with it.
func (s Slot) Shift(hours int) (Slot, error) {
	return NewSlot(s.date, s.hour+hours)
}

func (s Slot) String() string {
	return fmt.Sprintf("%s@%02d:00", s.DateString(), s.hour)
}

// PassCode is an opaque code handed to the player: an entry pass shown
// at the door or a payment reference quoted to the gateway.
type PassCode string

func newCode(prefix string) PassCode {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is not survivable for code issuance
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	return PassCode(prefix + "-" + strings.ToUpper(hex.EncodeToString(buf)))
}

func NewEntryPass() PassCode {
	return newCode("ENTRY")
}

func NewPaymentRef() PassCode {
	return newCode("PAY")
}

// NewBatchRef links the per-hour bookings of one multi-hour request.
// Purely for display grouping; each booking stays independently
// cancellable and completable.
func NewBatchRef() PassCode {
	return newCode("BATCH")
}

func (p PassCode) String() string {
	return string(p)
}
