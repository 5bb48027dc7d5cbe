package ledger

import "errors"

var (
	ErrInvalidKind   = errors.New("invalid transaction type")
	ErrInvalidStatus = errors.New("invalid transaction status")
	ErrInvalidMethod = errors.New("invalid payment method")
)

type Kind string

const (
	KindPayment Kind = "PAYMENT"
	KindRefund  Kind = "REFUND"
)

func NewKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPayment, KindRefund:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string { return string(k) }

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusRefunded  Status = "REFUNDED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

type Method string

const (
	MethodQR      Method = "QR"
	MethodCash    Method = "CASH"
	MethodCredits Method = "CREDITS"
)

func NewMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodQR, MethodCash, MethodCredits:
		return Method(s), nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string { return string(m) }
