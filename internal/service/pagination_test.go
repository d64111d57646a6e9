package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := makeQuestions(23)

	testCases := []struct {
		name    string
		page    int
		wantLen int
		firstID uint
	}{
		{"первая страница", 1, 10, 1},
		{"вторая страница", 2, 10, 11},
		{"неполная последняя", 3, 3, 21},
		{"за пределами", 4, 0, 0},
		{"далеко за пределами", 999, 0, 0},
		{"максимальный int", math.MaxInt, 0, 0},
		{"нулевая", 0, 0, 0},
		{"отрицательная", -1, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page := Paginate(items, tc.page)
			assert.NotNil(t, page, "страница никогда не должна быть nil")
			assert.Len(t, page, tc.wantLen)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.firstID, page[0].ID)
			}
		})
	}
}

func TestPaginate_Properties(t *testing.T) {
	// Для любой страницы N результат совпадает с [(N-1)*10, N*10) полной коллекции
	for n := 0; n <= 35; n += 7 {
		items := makeQuestions(n)
		for page := 1; page <= 5; page++ {
			got := Paginate(items, page)
			assert.LessOrEqual(t, len(got), QuestionsPerPage)
			for i, q := range got {
				assert.Equal(t, items[(page-1)*QuestionsPerPage+i].ID, q.ID)
			}
		}
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	assert.Empty(t, Paginate([]int(nil), 1))
	assert.NotNil(t, Paginate([]int(nil), 1))
}
