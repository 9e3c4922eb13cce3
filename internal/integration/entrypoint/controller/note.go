package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finly/backend/internal/application/usecase/note"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/entrypoint/dto"
)

// NoteController handles note endpoints.
type NoteController struct {
	listUseCase   *note.ListNotesUseCase
	createUseCase *note.CreateNoteUseCase
	updateUseCase *note.UpdateNoteUseCase
	deleteUseCase *note.DeleteNoteUseCase
}

// NewNoteController creates a new note controller instance.
func NewNoteController(
	listUseCase *note.ListNotesUseCase,
	createUseCase *note.CreateNoteUseCase,
	updateUseCase *note.UpdateNoteUseCase,
	deleteUseCase *note.DeleteNoteUseCase,
) *NoteController {
	return &NoteController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /notes requests. Optional tag and since query parameters
// narrow the listing.
func (c *NoteController) List(ctx *gin.Context) {
	input := note.ListNotesInput{}

	if tagStr := ctx.Query("tag"); tagStr != "" {
		tag := entity.NoteTag(tagStr)
		input.Tag = &tag
	}

	if sinceStr := ctx.Query("since"); sinceStr != "" {
		since, err := time.Parse(dto.DateLayout, sinceStr)
		if err == nil {
			input.Since = &since
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notes",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteListResponse(output.Notes))
}

// Create handles POST /notes requests.
func (c *NoteController) Create(ctx *gin.Context) {
	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingNoteFields),
		})
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingNoteFields),
		})
		return
	}

	input := note.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tag:     entity.NoteTag(req.Tag),
		Remark:  req.Remark,
		Image:   req.Image,
		Date:    date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(output.Note))
}

// Update handles PUT /notes/:id requests.
func (c *NoteController) Update(ctx *gin.Context) {
	noteID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := note.UpdateNoteInput{
		NoteID:  noteID,
		Title:   req.Title,
		Content: req.Content,
		Remark:  req.Remark,
		Image:   req.Image,
	}

	if req.Tag != nil {
		tag := entity.NoteTag(*req.Tag)
		input.Tag = &tag
	}

	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteResponse(output.Note))
}

// Delete handles DELETE /notes/:id requests.
func (c *NoteController) Delete(ctx *gin.Context) {
	noteID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), note.DeleteNoteInput{
		NoteID: noteID,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleNoteError maps note errors to HTTP responses.
func (c *NoteController) handleNoteError(ctx *gin.Context, err error) {
	var nteErr *domainerror.NoteError
	if errors.As(err, &nteErr) {
		ctx.JSON(c.getStatusCodeForNoteError(nteErr.Code), dto.ErrorResponse{
			Error: nteErr.Message,
			Code:  string(nteErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForNoteError maps note error codes to HTTP status codes.
func (c *NoteController) getStatusCodeForNoteError(code domainerror.NoteErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidNoteTag,
		domainerror.ErrCodeMissingNoteFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
