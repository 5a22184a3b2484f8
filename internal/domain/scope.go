package domain

// Principal — аутентифицированный сотрудник, инициатор запроса.
// Кроме почты никакие данные о личности не считаются доверенными.
type Principal struct {
	Email string
}

// EffectiveScope — разрешённая область видимости запроса.
// Нулевое значение — неограниченный доступ (администратор).
type EffectiveScope struct {
	Vendor string
	// Assigned — область закреплена за сотрудником в справочнике,
	// а не выбрана администратором через фильтр.
	Assigned bool
}

// Unrestricted — область без ограничений.
func Unrestricted() EffectiveScope { return EffectiveScope{} }

// RestrictedTo — область одного поставщика.
func RestrictedTo(vendor string, assigned bool) EffectiveScope {
	return EffectiveScope{Vendor: vendor, Assigned: assigned}
}

// Restricted сообщает, ограничена ли область одним поставщиком.
func (s EffectiveScope) Restricted() bool { return s.Vendor != "" }

// Allows — видна ли строка данного поставщика в этой области.
// Пустой (неизвестный) поставщик под ограничением не виден никогда.
func (s EffectiveScope) Allows(vendor string) bool {
	if !s.Restricted() {
		return true
	}
	return vendor == s.Vendor
}
