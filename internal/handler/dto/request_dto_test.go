package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsPostRequest_Decode(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantCategory   string
		wantDifficulty int
	}{
		{name: "числа", body: `{"category":3,"difficulty":2}`, wantCategory: "3", wantDifficulty: 2},
		{name: "строки", body: `{"category":"3","difficulty":"2"}`, wantCategory: "3", wantDifficulty: 2},
		{name: "строка с пробелами", body: `{"category":"1","difficulty":" 5 "}`, wantCategory: "1", wantDifficulty: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req QuestionsPostRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			require.NotNil(t, req.CategoryString())
			assert.Equal(t, tt.wantCategory, *req.CategoryString())
			require.NotNil(t, req.DifficultyInt())
			assert.Equal(t, tt.wantDifficulty, *req.DifficultyInt())
			assert.False(t, req.IsSearch())
		})
	}
}

func TestQuestionsPostRequest_NullAndMissing(t *testing.T) {
	var req QuestionsPostRequest
	require.NoError(t, json.Unmarshal([]byte(`{"difficulty":null,"search":""}`), &req))

	assert.Nil(t, req.DifficultyInt())
	assert.Nil(t, req.CategoryString())
	assert.True(t, req.IsSearch(), "пустая строка search всё равно означает поиск")
}

func TestFlexibleInt_Invalid(t *testing.T) {
	for _, body := range []string{`"hard"`, `"3.5"`, `3.5`, `true`, `""`} {
		var n FlexibleInt
		assert.Error(t, json.Unmarshal([]byte(body), &n), "вход %s", body)
	}
}

func TestFlexibleID(t *testing.T) {
	var id FlexibleID
	require.NoError(t, json.Unmarshal([]byte(`"7"`), &id))
	assert.Equal(t, FlexibleID(7), id)

	require.NoError(t, json.Unmarshal([]byte(`0`), &id))
	assert.Equal(t, FlexibleID(0), id)

	for _, body := range []string{`-1`, `"art"`, `1.5`} {
		assert.Error(t, json.Unmarshal([]byte(body), &id), "вход %s", body)
	}
}

func TestQuizRequest_Valid(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{body: `{"quiz_category":{"id":0},"previous_questions":[]}`, want: true},
		{body: `{"quiz_category":{"id":"2","type":"Art"},"previous_questions":[1,2]}`, want: true},
		{body: `{"quiz_category":{"type":"Art"},"previous_questions":[]}`, want: false},
		{body: `{"quiz_category":null,"previous_questions":[]}`, want: false},
		{body: `{"quiz_category":{"id":1}}`, want: false},
	}

	for _, tt := range tests {
		var req QuizRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req), tt.body)
		assert.Equal(t, tt.want, req.Valid(), tt.body)
	}
}
