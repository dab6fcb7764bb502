package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qazaqkitap/qazaqkitap/internal/tasks"
)

// AdminController exposes operator endpoints. Currently that is the
// on-demand catalog asset check, queued rather than run inline so a slow
// disk never stalls a request.
type AdminController struct {
	taskClient *tasks.Client
}

func NewAdminController(taskClient *tasks.Client) *AdminController {
	return &AdminController{taskClient: taskClient}
}

// CheckAssets enqueues a full catalog asset verification run.
// POST /api/admin/assets/check
func (ac *AdminController) CheckAssets(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondUnauthorized(c)
		return
	}

	if ac.taskClient == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "task queue is not enabled"})
		return
	}

	ids, err := ac.taskClient.Add(tasks.CheckAssetsTask{RequestedBy: userID}).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue asset check")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "asset check queued",
		"task_ids": ids,
	})
}
