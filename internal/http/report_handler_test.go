package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
	"github.com/guttosm/menu-service/internal/service"
)

func newReportRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryCountRepository()
	repo.PutSession(model.CountSession{
		ID:        "count-2025-02",
		Site:      "Main kitchen",
		CountedBy: "J. Moreno",
		StartedAt: time.Date(2025, time.February, 28, 8, 0, 0, 0, time.UTC),
		Status:    "closed",
	})
	repo.AddLine(model.CountLine{
		SessionID: "count-2025-02", ItemCode: "RICE-01", FinanceCode: "food",
		ExpectedQty: 10, CountedQty: 8, UnitCostCents: 250,
	})

	handler := NewReportHandler(service.NewCountReportService(repo))

	router := gin.New()
	router.GET("/api/reports/count/:id", handler.CountReport)
	return router
}

func getReport(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReportHandler_CountReport(t *testing.T) {
	router := newReportRouter(t)

	t.Run("default format is structured json", func(t *testing.T) {
		w := getReport(t, router, "/api/reports/count/count-2025-02")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

		var report model.CountReport
		decodeData(t, w, &report)
		assert.Equal(t, "count-2025-02", report.Session.ID)
		require.Len(t, report.Codes, 1)
		assert.Equal(t, "food", report.Codes[0].Code)
		assert.Equal(t, int64(2000), report.Codes[0].CountedCents)
	})

	t.Run("csv format downloads a file", func(t *testing.T) {
		w := getReport(t, router, "/api/reports/count/count-2025-02?format=csv")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "count-count-2025-02.csv")
		assert.Contains(t, w.Body.String(), "financeCode,expectedQty,countedQty")
		assert.Contains(t, w.Body.String(), "food,10,8,-2,25.00,20.00,-5.00,true")
	})

	t.Run("text format renders the fixed width document", func(t *testing.T) {
		w := getReport(t, router, "/api/reports/count/count-2025-02?format=text")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "COUNT REPORT  count-2025-02")
		assert.Contains(t, w.Body.String(), "Food + freight (reimbursable)")
	})

	t.Run("unknown session returns 404", func(t *testing.T) {
		w := getReport(t, router, "/api/reports/count/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
