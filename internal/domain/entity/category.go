package entity

// Category представляет категорию вопросов (Science, Art, ...)
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
