package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkravch/studyplan/internal/app/models/dto"
	"github.com/dkravch/studyplan/internal/app/services"
	"github.com/dkravch/studyplan/internal/middleware"
)

// SubjectController handles subject CRUD endpoints.
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController.
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// GetAllSubjects lists subjects
// @Summary List subjects
// @Description Lists all subjects, optionally only those owned by one student.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by owning student"
// @Success 200 {array} models.Subject
// @Failure 500 {object} dto.MessageResponse
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	var studentID *int64
	if raw := ctx.Query("studentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("studentId must be a valid number"))
			return
		}
		studentID = &id
	}

	subjects, err := c.subjectService.GetAllSubjects(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// GetSubjectByID fetches one subject
// @Summary Get subject by ID
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} models.Subject
// @Failure 404 {object} dto.MessageResponse "Subject not found"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubjectByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Subject ID must be a valid number"))
		return
	}

	subject, err := c.subjectService.GetSubjectByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// CreateSubject creates a subject, optionally with an academic plan
// @Summary Create a subject
// @Description Creates a subject. When idStudent is present a plan with a null grade is created with it and the body carries both records.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject fields"
// @Success 201 {object} dto.CreatedSubjectResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid subject data: "+err.Error()))
		return
	}

	subject, plan, err := c.subjectService.CreateSubject(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if plan == nil {
		ctx.JSON(http.StatusCreated, subject)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedSubjectResponse{
		Subject:      subject,
		AcademicPlan: plan,
	})
}

// UpdateSubject partially updates a subject
// @Summary Update a subject
// @Description Applies only the fields present in the body; absent fields stay unchanged.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Fields to change"
// @Success 200 {object} models.Subject
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /subjects/{id} [patch]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Subject ID must be a valid number"))
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid subject data: "+err.Error()))
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// DeleteSubject deletes a subject
// @Summary Delete a subject
// @Description Deletes the subject. Plans referencing it are kept.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.MessageResponse "Subject deleted"
// @Failure 404 {object} dto.MessageResponse
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Subject ID must be a valid number"))
		return
	}

	if err := c.subjectService.DeleteSubject(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject deleted"))
}
