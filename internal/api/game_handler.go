package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/word-game/internal/errors"
	"github.com/wfunc/word-game/internal/middleware"
	"github.com/wfunc/word-game/internal/service"
)

// GameHandler 游戏处理器
type GameHandler struct {
	gameService service.GameService
}

// NewGameHandler 创建游戏处理器
func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// GuessRequest 猜测请求
type GuessRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Word      string `json:"word" binding:"required"`
}

// StartSession 开始新游戏
// @Summary 开始新游戏
// @Description 为当前用户开始一局新游戏，受每日次数限制
// @Tags Game
// @Produce json
// @Security Bearer
// @Success 200 {object} service.StartSessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/game/start [post]
func (h *GameHandler) StartSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrAuthentication))
		return
	}

	resp, err := h.gameService.StartSession(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitGuess 提交猜测
// @Summary 提交猜测
// @Description 对进行中的会话提交一次猜测，返回逐字母反馈
// @Tags Game
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body GuessRequest true "猜测内容"
// @Success 200 {object} service.GuessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/game/guess [post]
func (h *GameHandler) SubmitGuess(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrAuthentication))
		return
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam, err.Error()))
		return
	}

	resp, err := h.gameService.SubmitGuess(c.Request.Context(), userID, req.SessionID, req.Word)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSession 获取会话摘要
// @Summary 获取会话摘要
// @Description 获取指定会话的猜测记录和状态，仅限会话所有者
// @Tags Game
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Success 200 {object} service.SessionSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/game/sessions/{id} [get]
func (h *GameHandler) GetSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrAuthentication))
		return
	}

	resp, err := h.gameService.GetSessionSummary(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDailyStatus 获取今日状态
// @Summary 获取今日状态
// @Description 返回当前用户今日已玩局数与剩余配额
// @Tags Game
// @Produce json
// @Security Bearer
// @Success 200 {object} service.DailyStatusResponse
// @Router /api/v1/game/today [get]
func (h *GameHandler) GetDailyStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrAuthentication))
		return
	}

	resp, err := h.gameService.GetDailyStatus(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
