package directory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/vendor-order-service/internal/domain"
)

// StaticDirectory — неизменяемое назначение сотрудник→поставщик,
// заданное конфигурацией. Замена для инсталляций без таблицы
// vendor_staff и основа для тестов.
type StaticDirectory struct {
	assignments map[string]string
}

func NewStaticDirectory(assignments map[string]string) *StaticDirectory {
	m := make(map[string]string, len(assignments))
	for email, vendor := range assignments {
		m[email] = vendor
	}
	return &StaticDirectory{assignments: m}
}

// FromJSON — справочник из JSON-объекта вида {"почта": "поставщик"}.
func FromJSON(raw string) (*StaticDirectory, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("parse vendor staff mapping: %w", err)
	}
	return NewStaticDirectory(m), nil
}

func (d *StaticDirectory) VendorFor(_ context.Context, email string) (string, error) {
	return d.assignments[email], nil
}

var _ domain.VendorDirectory = (*StaticDirectory)(nil)
