package entity

import "strconv"

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	Category   string `gorm:"index" json:"category"`
	Difficulty int    `json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// CategoryID возвращает числовой идентификатор категории.
// Колонка category хранит строку, поэтому значение может не разобраться.
func (q *Question) CategoryID() (uint, bool) {
	id, err := strconv.ParseUint(q.Category, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// CategoryRef приводит идентификатор категории к формату колонки questions.category
func CategoryRef(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
