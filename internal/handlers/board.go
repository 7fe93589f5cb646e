package handlers

import (
	"errors"
	"net/http"

	"github.com/Lucassfers/My-task-back-end/internal/constants"
	"github.com/Lucassfers/My-task-back-end/internal/dto"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/Lucassfers/My-task-back-end/internal/middleware"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/services"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardHandler struct {
	boardService    *services.BoardService
	deletionService *services.DeletionService
}

func NewBoardHandler(boardService *services.BoardService, deletionService *services.DeletionService) *BoardHandler {
	return &BoardHandler{
		boardService:    boardService,
		deletionService: deletionService,
	}
}

// CreateBoard creates a board owned by the current user
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateBoardRequest struct {
		Title  string             `json:"title" binding:"required,max=255"`
		Reason models.BoardReason `json:"reason"`
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(services.CreateBoardInput{
		Title:   req.Title,
		Reason:  req.Reason,
		OwnerID: userID,
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoardDTO(*board))
}

// ListBoards returns the current user's boards, paginated
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)
	boards, total, err := h.boardService.ListBoards(userID, params)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardListResponse(boards, params, total))
}

// GetBoard returns a board with its lists, tasks and comments.
// Ownership is checked by RequireBoardOwner.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, ok := boardFromContext(c)
	if !ok {
		return
	}

	full, err := h.boardService.GetBoard(board.ID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(*full))
}

// UpdateBoard changes the title or reason of a board
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	board, ok := boardFromContext(c)
	if !ok {
		return
	}

	type UpdateBoardRequest struct {
		Title  *string             `json:"title" binding:"omitempty,max=255"`
		Reason *models.BoardReason `json:"reason"`
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.boardService.UpdateBoard(services.UpdateBoardInput{
		BoardID: board.ID,
		Title:   req.Title,
		Reason:  req.Reason,
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(*updated))
}

// DeleteBoard removes a board with its lists, tasks and comments
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	board, ok := boardFromContext(c)
	if !ok {
		return
	}

	report, err := h.deletionService.DeleteBoard(c.Request.Context(), board.ID)
	if err != nil {
		respondDeletionError(c, err, "Board not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeletionResponse("Board deleted successfully", report))
}

// CreateList adds a list to one of the current user's boards
func (h *BoardHandler) CreateList(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateListRequest struct {
		Title   string `json:"title" binding:"required,max=255"`
		BoardID string `json:"board_id" binding:"required,uuid"`
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	list, err := h.boardService.CreateList(services.CreateListInput{
		Title:   req.Title,
		BoardID: uuid.MustParse(req.BoardID),
		ActorID: userID,
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListDTO(*list))
}

// ListLists returns the lists on the current user's boards
func (h *BoardHandler) ListLists(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	lists, err := h.boardService.ListLists(userID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lists": dto.ToListDTOs(lists),
	})
}

// UpdateList renames a list or moves it to another of the user's boards
func (h *BoardHandler) UpdateList(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateListRequest struct {
		Title   *string `json:"title" binding:"omitempty,max=255"`
		BoardID *string `json:"board_id" binding:"omitempty,uuid"`
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateListInput{
		ListID:  id,
		ActorID: userID,
		Title:   req.Title,
	}
	if req.BoardID != nil {
		boardID := uuid.MustParse(*req.BoardID)
		input.BoardID = &boardID
	}

	list, err := h.boardService.UpdateList(input)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListDTO(*list))
}

// DeleteList removes a list with its tasks and comments
func (h *BoardHandler) DeleteList(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if _, err := h.boardService.GetOwnedList(id, userID); err != nil {
		respondBoardError(c, err)
		return
	}

	report, err := h.deletionService.DeleteList(c.Request.Context(), id)
	if err != nil {
		respondDeletionError(c, err, "List not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeletionResponse("List deleted successfully", report))
}

func boardFromContext(c *gin.Context) (models.Board, bool) {
	value, exists := c.Get(constants.ContextKeyBoard)
	if !exists {
		apierrors.InternalError(c, "Board not found in context")
		return models.Board{}, false
	}

	board, ok := value.(models.Board)
	if !ok {
		apierrors.InternalError(c, "Invalid board data")
		return models.Board{}, false
	}
	return board, true
}

func respondBoardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidReason):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBoardNotFound),
		errors.Is(err, services.ErrListNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
