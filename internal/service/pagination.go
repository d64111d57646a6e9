package service

// QuestionsPerPage: размер страницы для всех списков вопросов
const QuestionsPerPage = 10

// Paginate возвращает страницу page (нумерация с 1) из упорядоченной коллекции:
// элементы [(page-1)*10, page*10). Страница за пределами коллекции и page < 1
// дают пустой (не nil) срез.
func Paginate[T any](items []T, page int) []T {
	// Номер страницы сравнивается с числом страниц до умножения, иначе огромный page переполняет int
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
