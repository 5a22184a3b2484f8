package domain

import (
	"fmt"
	"strings"
)

// Общие доменные ошибки
var (
	ErrNotFound    = notFoundError("not found")
	ErrValidation  = validationError("invalid data")
	ErrForbidden   = forbiddenError("forbidden")
	ErrEmptyRefund = emptyRefundError("nothing to refund")
	ErrMalformed   = malformedError("malformed source data")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }

type forbiddenError string

func (e forbiddenError) Error() string { return string(e) }

type emptyRefundError string

func (e emptyRefundError) Error() string { return string(e) }

type malformedError string

func (e malformedError) Error() string { return string(e) }

// ScopeViolationError — строка возврата принадлежит чужому поставщику.
type ScopeViolationError struct {
	LineItemID string
	Vendor     string
}

func (e *ScopeViolationError) Error() string {
	return fmt.Sprintf("line item %s belongs to vendor %q", e.LineItemID, e.Vendor)
}

func (e *ScopeViolationError) Unwrap() error { return ErrForbidden }

// QuantityError — запрошено больше, чем остаток к возврату.
type QuantityError struct {
	LineItemID string
	Requested  int
	Refundable int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("line item %s: requested %d of %d refundable", e.LineItemID, e.Requested, e.Refundable)
}

func (e *QuantityError) Unwrap() error { return ErrValidation }

// MalformedDataError — данные источника нарушают санитарный инвариант.
type MalformedDataError struct {
	OrderID string
	Reason  string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("order %s: %s", e.OrderID, e.Reason)
}

func (e *MalformedDataError) Unwrap() error { return ErrMalformed }

// UpstreamRejectionError — внешняя система отклонила возврат.
// Причины передаются вызывающей стороне дословно и повторно не
// интерпретируются.
type UpstreamRejectionError struct {
	Reasons []string
}

func (e *UpstreamRejectionError) Error() string {
	return "refund rejected upstream: " + strings.Join(e.Reasons, "; ")
}
