package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dailydo/internal/models"
	"dailydo/internal/services"
)

type TodoHandler struct {
	todos *services.TodoService
}

func NewTodoHandler(todos *services.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// GET /todo?_t=DD-MM-YYYY
func (h *TodoHandler) Day(c *gin.Context) {
	date := c.Query("_t")
	if date == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	list, err := h.todos.Open(date)
	if err != nil {
		writeError(c, "todo", "day", err)
		return
	}
	c.HTML(http.StatusOK, "todo.html", gin.H{
		"Date":    list.Date,
		"Entries": list.Entries(),
		"Percent": list.Percentage(),
	})
}

// POST /todo
func (h *TodoHandler) Add(c *gin.Context) {
	title := c.PostForm("title")
	date := c.PostForm("date")
	if title == "" || date == "" {
		c.String(http.StatusBadRequest, "Missing title or date")
		return
	}
	list, err := h.todos.Open(date)
	if err != nil {
		writeError(c, "todo", "add", err)
		return
	}
	entry, err := list.Add(title)
	if err != nil {
		writeError(c, "todo", "add", err)
		return
	}
	log.Printf("[todo][add] date=%s id=%d title=%q", list.Date, entry.ID, entry.Title)
	c.String(http.StatusOK, "ok")
}

// PUT /todo
//
// Exactly one of status/title must be present. The status string is resolved
// to the closed enum here at the boundary; unknown values are rejected, they
// never fall through.
func (h *TodoHandler) Update(c *gin.Context) {
	date := c.PostForm("date")
	index, ok := formInt(c, "index")
	if date == "" || !ok {
		c.String(http.StatusBadRequest, "Missing date or index")
		return
	}

	var status *models.Status
	if v := c.PostForm("status"); v != "" {
		st, err := models.ParseStatus(v)
		if err != nil {
			log.Printf("[todo][update][err] %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		status = &st
	}
	var title *string
	if v := c.PostForm("title"); v != "" {
		title = &v
	}

	list, err := h.todos.Open(date)
	if err != nil {
		writeError(c, "todo", "update", err)
		return
	}
	if err := list.Update(index, status, title); err != nil {
		writeError(c, "todo", "update", err)
		return
	}
	log.Printf("[todo][update] date=%s index=%d", list.Date, index)
	c.String(http.StatusOK, "ok")
}

// PUT /todo/reorder
func (h *TodoHandler) Reorder(c *gin.Context) {
	date := c.PostForm("date")
	from, okFrom := formInt(c, "from")
	to, okTo := formInt(c, "to")
	if date == "" || !okFrom || !okTo {
		c.String(http.StatusBadRequest, "Missing date, from or to")
		return
	}

	list, err := h.todos.Open(date)
	if err != nil {
		writeError(c, "todo", "reorder", err)
		return
	}
	if err := list.Reorder(from, to); err != nil {
		writeError(c, "todo", "reorder", err)
		return
	}
	log.Printf("[todo][reorder] date=%s from=%d to=%d", list.Date, from, to)
	c.String(http.StatusOK, "ok")
}

// POST /todo/postpone
func (h *TodoHandler) Postpone(c *gin.Context) {
	date := c.PostForm("date")
	index, ok := formInt(c, "index")
	if date == "" || !ok {
		c.String(http.StatusBadRequest, "Missing date or index")
		return
	}

	list, err := h.todos.Open(date)
	if err != nil {
		writeError(c, "todo", "postpone", err)
		return
	}
	if err := list.Postpone(index); err != nil {
		writeError(c, "todo", "postpone", err)
		return
	}
	log.Printf("[todo][postpone] date=%s index=%d", list.Date, index)
	c.String(http.StatusOK, "ok")
}

// GET /todo/log?_t=DD-MM-YYYY&index=i
func (h *TodoHandler) Log(c *gin.Context) {
	date := c.Query("_t")
	index := c.Query("index")
	if date == "" || index == "" {
		c.String(http.StatusBadRequest, "Missing date or index")
		return
	}
	list, err := h.todos.Open(date)
	if err != nil {
		writeError(c, "todo", "log", err)
		return
	}
	i, err := strconv.Atoi(index)
	if err != nil {
		c.String(http.StatusBadRequest, "Bad index")
		return
	}
	entry, err := list.Get(i)
	if err != nil {
		writeError(c, "todo", "log", err)
		return
	}
	c.HTML(http.StatusOK, "entry_log.html", gin.H{
		"Date":  list.Date,
		"Entry": entry,
	})
}
