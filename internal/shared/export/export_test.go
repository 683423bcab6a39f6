package export_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/shared/export"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() export.Table {
	return export.Table{
		Headers: []string{"الرقم", "الاسم", "الملاحظات"},
		Rows: [][]string{
			{"EMP-000001", "أحمد علي", "قسم الموارد, الفرع الرئيسي"},
			{"EMP-000002", "سارة \"الحسن\"", ""},
			{"EMP-000003", "محمد", "سطر\nثاني"},
		},
	}
}

func TestCSV(t *testing.T) {
	body, err := export.CSV(sampleTable())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(body[3:])).ReadAll()
	require.NoError(t, err)

	assert.Len(t, records, len(sampleTable().Rows)+1)
	assert.Equal(t, "قسم الموارد, الفرع الرئيسي", records[1][2])
	assert.Equal(t, "سارة \"الحسن\"", records[2][1])
	assert.Equal(t, "سطر\nثاني", records[3][2])
}

func TestCSV_Empty(t *testing.T) {
	body, err := export.CSV(export.Table{Headers: []string{"a", "b"}})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCSV_RaggedRow(t *testing.T) {
	_, err := export.CSV(export.Table{Headers: []string{"a", "b"}, Rows: [][]string{{"only-one"}}})

	assert.Error(t, err)
}

func TestXLSX(t *testing.T) {
	body, err := export.XLSX(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Len(t, rows, len(sampleTable().Rows)+1)
	assert.Equal(t, "الاسم", rows[0][1])
	assert.Equal(t, "أحمد علي", rows[1][1])
}

func TestSend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("csv default", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/export", nil)

		err := export.Send(c, "employees", "", sampleTable())

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "employees-")
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	})

	t.Run("xlsx", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/rewards/export?format=xlsx", nil)

		err := export.Send(c, "rewards", export.FormatXLSX, sampleTable())

		require.NoError(t, err)
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	})
}
