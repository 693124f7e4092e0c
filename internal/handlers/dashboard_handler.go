package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dailydo/internal/services"
)

type DashboardHandler struct {
	todos   *services.TodoService
	reports *services.ReportService
}

func NewDashboardHandler(todos *services.TodoService, reports *services.ReportService) *DashboardHandler {
	return &DashboardHandler{todos: todos, reports: reports}
}

// GET /
func (h *DashboardHandler) Home(c *gin.Context) {
	today, err := h.todos.Open("")
	if err != nil {
		writeError(c, "dashboard", "home", err)
		return
	}
	week, err := h.reports.PercentageWeekly()
	if err != nil {
		writeError(c, "dashboard", "home", err)
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Date":  today.Date,
		"Today": today.Percentage(),
		"Week":  week,
	})
}

// GET /goals
func (h *DashboardHandler) Goals(c *gin.Context) {
	c.HTML(http.StatusOK, "goals.html", nil)
}
