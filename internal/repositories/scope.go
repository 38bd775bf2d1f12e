package repositories

import "gorm.io/gorm"

// notDeleted - единственное место, где выражен фильтр soft-delete.
// Все "активные" выборки категорий и вакансий проходят через этот scope,
// чтобы фильтр нельзя было забыть на отдельном call site.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
