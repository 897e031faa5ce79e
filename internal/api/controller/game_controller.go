package controller

import (
	"errors"
	"net/http"

	"ctchen222/tic-tac-toe-web/internal/api/models"
	"ctchen222/tic-tac-toe-web/internal/api/response"
	"ctchen222/tic-tac-toe-web/internal/api/service"
	"ctchen222/tic-tac-toe-web/internal/game"

	"github.com/gin-gonic/gin"
)

// GameController handles stateless game HTTP requests.
type GameController struct {
	gameService service.GameService
}

// NewGameController creates a new GameController.
func NewGameController(gameService service.GameService) *GameController {
	return &GameController{
		gameService: gameService,
	}
}

// Evaluate handles the board evaluation endpoint.
func (gc *GameController) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := gc.gameService.Evaluate(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, game.ErrBoardSize) || errors.Is(err, game.ErrInvalidMark) {
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SuccessResponse(c, resp)
}

// WinLines lists the winning lines.
func (gc *GameController) WinLines(c *gin.Context) {
	lines := gc.gameService.WinLines(c.Request.Context())

	list := make([]any, len(lines))
	for i, line := range lines {
		list[i] = line
	}
	response.SuccessResponseList(c, list)
}
