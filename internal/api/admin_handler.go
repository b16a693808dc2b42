package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/word-game/internal/errors"
	"github.com/wfunc/word-game/internal/service"
)

// AdminHandler 管理处理器
type AdminHandler struct {
	statsService service.StatsService
}

// NewAdminHandler 创建管理处理器
func NewAdminHandler(statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
	}
}

// DailyStatsResponse 日统计响应
type DailyStatsResponse struct {
	Stats *service.DailyStats        `json:"stats"`
	Users []*service.UserDailyReport `json:"users"`
}

// GetDailyStats 获取日统计
// @Summary 获取日统计
// @Description 返回某日的全局统计和按用户报表，仅限管理员
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param date query string false "日期，格式YYYY-MM-DD，默认今天"
// @Success 200 {object} DailyStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/stats [get]
func (h *AdminHandler) GetDailyStats(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, apperrors.New(apperrors.ErrInvalidParam, "日期格式必须为YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	stats, err := h.statsService.DailyStats(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	users, err := h.statsService.PerUserReport(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DailyStatsResponse{
		Stats: stats,
		Users: users,
	})
}
