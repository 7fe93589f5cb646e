package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/repository"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrListNotFound  = errors.New("list not found")
	ErrInvalidReason = errors.New("invalid board reason")
	ErrTitleRequired = errors.New("title is required")
)

// BoardService provides business logic for boards and their lists.
type BoardService struct {
	boardRepo repository.BoardRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(boardRepo repository.BoardRepository) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
	}
}

// CreateBoardInput represents parameters to create a new board.
type CreateBoardInput struct {
	Title   string
	Reason  models.BoardReason
	OwnerID uuid.UUID
	AdminID *uuid.UUID
}

// CreateBoard creates a board owned by input.OwnerID. An empty reason
// defaults to OTHER.
func (s *BoardService) CreateBoard(input CreateBoardInput) (*models.Board, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	reason := input.Reason
	if reason == "" {
		reason = models.ReasonOther
	}
	if !reason.Valid() {
		return nil, ErrInvalidReason
	}

	board := &models.Board{
		Title:   title,
		Reason:  reason,
		UserID:  input.OwnerID,
		AdminID: input.AdminID,
	}
	if err := s.boardRepo.Create(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// ListBoards returns a page of the boards owned by a user.
func (s *BoardService) ListBoards(ownerID uuid.UUID, params utils.PaginationParams) ([]models.Board, int64, error) {
	boards, total, err := s.boardRepo.ListByOwner(ownerID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, total, nil
}

// GetBoard returns a board with its lists, tasks and comments.
func (s *BoardService) GetBoard(id uuid.UUID) (*models.Board, error) {
	board, err := s.boardRepo.FindWithContent(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	return board, nil
}

// UpdateBoardInput represents a partial board update. Nil fields are left
// unchanged.
type UpdateBoardInput struct {
	BoardID uuid.UUID
	Title   *string
	Reason  *models.BoardReason
}

// UpdateBoard changes the title and reason of a board.
func (s *BoardService) UpdateBoard(input UpdateBoardInput) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(input.BoardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		board.Title = title
	}
	if input.Reason != nil {
		if !input.Reason.Valid() {
			return nil, ErrInvalidReason
		}
		board.Reason = *input.Reason
	}

	if err := s.boardRepo.Update(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

// CreateListInput represents parameters to create a list on a board.
type CreateListInput struct {
	Title   string
	BoardID uuid.UUID
	ActorID uuid.UUID
}

// CreateList adds a list to a board owned by the actor. Boards of other
// users are reported as missing.
func (s *BoardService) CreateList(input CreateListInput) (*models.List, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if _, err := s.ownedBoard(input.BoardID, input.ActorID); err != nil {
		return nil, err
	}

	list := &models.List{
		Title:   title,
		BoardID: input.BoardID,
	}
	if err := s.boardRepo.CreateList(list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return list, nil
}

// UpdateListInput represents a partial list update. Setting BoardID moves the
// list, and with it its tasks, to another board.
type UpdateListInput struct {
	ListID  uuid.UUID
	ActorID uuid.UUID
	Title   *string
	BoardID *uuid.UUID
}

// UpdateList renames a list or moves it between two boards the actor owns.
func (s *BoardService) UpdateList(input UpdateListInput) (*models.List, error) {
	list, err := s.GetOwnedList(input.ListID, input.ActorID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		list.Title = title
	}
	if input.BoardID != nil && *input.BoardID != list.BoardID {
		if _, err := s.ownedBoard(*input.BoardID, input.ActorID); err != nil {
			return nil, err
		}
		list.BoardID = *input.BoardID
	}

	if err := s.boardRepo.UpdateList(list); err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	return list, nil
}

// ListLists returns every list on the user's boards, grouped by board.
func (s *BoardService) ListLists(ownerID uuid.UUID) ([]models.List, error) {
	lists, err := s.boardRepo.ListListsByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// GetOwnedList returns a list whose board belongs to the actor.
func (s *BoardService) GetOwnedList(listID, actorID uuid.UUID) (*models.List, error) {
	list, err := s.boardRepo.FindListByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}

	if _, err := s.ownedBoard(list.BoardID, actorID); err != nil {
		if errors.Is(err, ErrBoardNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	return list, nil
}

func (s *BoardService) ownedBoard(boardID, actorID uuid.UUID) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	if board.UserID != actorID {
		return nil, ErrBoardNotFound
	}
	return board, nil
}
