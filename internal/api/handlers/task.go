package handlers

import (
	"net/http"

	"teamflow-backend/internal/database/models"
	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /tasks
// @Summary Create a task
// @Description Create a task in a team; managers and admins of the team only
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /tasks
// @Summary List tasks
// @Description Get tasks in the authenticated user's teams with optional filters
// @Tags tasks
// @Produce json
// @Param team query string false "Team ID (UUID)"
// @Param author query string false "Author ID (UUID)"
// @Param executor query string false "Executor ID (UUID)"
// @Param status query string false "Status (open, progress, completed)"
// @Param search query string false "Substring of title or description"
// @Success 200 {array} service.TaskResponse "Tasks"
// @Failure 400 {object} map[string]interface{} "Invalid filters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filters repository.TaskFilters
	for name, target := range map[string]**uuid.UUID{
		"team":     &filters.TeamID,
		"author":   &filters.AuthorID,
		"executor": &filters.ExecutorID,
	} {
		if value := c.Query(name); value != "" {
			id, err := uuid.Parse(value)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " ID"})
				return
			}
			*target = &id
		}
	}
	filters.Status = models.TaskStatus(c.Query("status"))
	filters.Search = c.Query("search")

	tasks, err := h.taskService.List(userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /tasks/:id
// @Summary Get task by ID
// @Description Get a task in one of the authenticated user's teams
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Task"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/:id
// @Summary Update a task
// @Description Author may change any field; the executor may only move status from open to progress
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} service.TaskResponse "Updated task"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not author or executor"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.Update(userID, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus handles PUT /tasks/:id/status
// @Summary Update task status
// @Description Change only the task status, under the same rules as a full update
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param status body service.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} service.TaskResponse "Updated task"
// @Failure 400 {object} map[string]interface{} "Invalid status or transition"
// @Failure 403 {object} map[string]interface{} "Not author or executor"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/status [put]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.UpdateStatus(userID, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// EvaluateTask handles POST /tasks/:id/evaluate
// @Summary Evaluate a completed task
// @Description Rate a completed task; task author only, once per task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param evaluation body service.EvaluateTaskRequest true "Rating"
// @Success 201 {object} service.EvaluationResponse "Evaluation recorded"
// @Failure 400 {object} map[string]interface{} "Task not completed, already rated, or rating out of range"
// @Failure 403 {object} map[string]interface{} "Not the task author"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/evaluate [post]
func (h *TaskHandler) EvaluateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.EvaluateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation, err := h.taskService.Evaluate(userID, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, evaluation)
}

// ExecutorEvaluations handles GET /tasks/executor-evaluations
// @Summary My evaluations as executor
// @Description Get every rating the authenticated user has received as a task executor, with the average
// @Tags tasks
// @Produce json
// @Success 200 {object} service.ExecutorEvaluationsResponse "Evaluations and average"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/executor-evaluations [get]
func (h *TaskHandler) ExecutorEvaluations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.taskService.ExecutorEvaluations(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
