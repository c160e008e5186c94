package handler

import (
	"net/http"
	"time"

	"devfriend/internal/delivery/http/response"
	"devfriend/internal/domain/entity"
	"devfriend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type noteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type noteResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func newNoteResponse(note *entity.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newNoteResponses(notes []*entity.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, newNoteResponse(note))
	}

	return out
}

// NoteHandler holds dependencies for the scratchpad handlers.
type NoteHandler struct {
	uc usecase.NoteUsecase
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// Create stores a new note.
func (h *NoteHandler) Create(c echo.Context) error {
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.Create(c.Request().Context(), usecase.NoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newNoteResponse(note), "Note created successfully")
}

// List returns every note, newest first.
func (h *NoteHandler) List(c echo.Context) error {
	notes, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newNoteResponses(notes), "Notes retrieved successfully")
}

// Get returns one note.
func (h *NoteHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newNoteResponse(note), "Note retrieved successfully")
}

// Update replaces a note's title and content.
func (h *NoteHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.Update(c.Request().Context(), id, usecase.NoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newNoteResponse(note), "Note updated successfully")
}

// Delete removes a note.
func (h *NoteHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Note deleted"}, "Note deleted successfully")
}
