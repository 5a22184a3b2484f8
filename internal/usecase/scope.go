package usecase

import (
	"context"

	"github.com/example/vendor-order-service/internal/domain"
)

// ResolveScope — единственная точка вычисления области видимости.
// Назначение сотрудника всегда сильнее фильтра из запроса: подделанный
// параметр vendor не расширяет доступ. Фильтр учитывается только для
// администратора (без назначения).
func ResolveScope(assignedVendor, requestedVendor string) domain.EffectiveScope {
	if assignedVendor != "" {
		return domain.RestrictedTo(assignedVendor, true)
	}
	if requestedVendor != "" {
		return domain.RestrictedTo(requestedVendor, false)
	}
	return domain.Unrestricted()
}

// resolveRequestScope — назначение из справочника плюс фильтр запроса.
// Отсутствие почты означает администратора без обращения к справочнику.
func resolveRequestScope(ctx context.Context, dir domain.VendorDirectory, p domain.Principal, requestedVendor string) (domain.EffectiveScope, error) {
	assigned := ""
	if p.Email != "" {
		vendor, err := dir.VendorFor(ctx, p.Email)
		if err != nil {
			return domain.EffectiveScope{}, err
		}
		assigned = vendor
	}
	return ResolveScope(assigned, requestedVendor), nil
}
