package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
)

const (
	exportSheetName = "Вопросы"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeaders = []string{"ID", "Вопрос", "Ответ", "Категория", "Название категории", "Сложность"}

// ExportQuestions обрабатывает GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, categoryNames, err := h.questionService.ExportQuestions(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, categoryNames, filename)
	default:
		h.exportCSV(c, questions, categoryNames, filename)
	}
}

// exportCSV выгружает вопросы в CSV с BOM для корректного UTF-8 в Excel
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, categoryNames map[string]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.log.Warn("Ошибка записи BOM", zap.Error(err))
		return
	}

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeaders); err != nil {
		h.log.Warn("Ошибка записи заголовков CSV", zap.Error(err))
		return
	}
	for _, q := range questions {
		record := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			q.Category,
			sanitizeForExcel(categoryNames[q.Category]),
			strconv.Itoa(q.Difficulty),
		}
		if err := writer.Write(record); err != nil {
			h.log.Warn("Ошибка записи строки CSV", zap.Uint("question_id", q.ID), zap.Error(err))
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.log.Warn("Ошибка при Flush CSV", zap.Error(err))
	}
}

// exportXLSX выгружает вопросы в Excel через StreamWriter.
// Файл собирается в буфер целиком, чтобы ошибка сборки ещё могла вернуть 500.
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, categoryNames map[string]string, filename string) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			h.log.Warn("Ошибка закрытия XLSX", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		h.failExport(c, err)
		return
	}
	sw, err := f.NewStreamWriter(exportSheetName)
	if err != nil {
		h.failExport(c, err)
		return
	}

	headers := make([]interface{}, 0, len(exportHeaders))
	for _, header := range exportHeaders {
		headers = append(headers, header)
	}
	if err := sw.SetRow("A1", headers); err != nil {
		h.failExport(c, err)
		return
	}

	for i, q := range questions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			h.failExport(c, err)
			return
		}
		row := []interface{}{
			q.ID,
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			q.Category,
			sanitizeForExcel(categoryNames[q.Category]),
			q.Difficulty,
		}
		if err := sw.SetRow(cell, row); err != nil {
			h.failExport(c, err)
			return
		}
	}
	if err := sw.Flush(); err != nil {
		h.failExport(c, err)
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.failExport(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *QuestionHandler) failExport(c *gin.Context, err error) {
	h.log.Error("Ошибка формирования XLSX", zap.Error(err))
	abortWithStatus(c, http.StatusInternalServerError)
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
