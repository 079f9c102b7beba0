package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkravch/studyplan/internal/app/models/dto"
	"github.com/dkravch/studyplan/internal/app/services"
	"github.com/dkravch/studyplan/internal/middleware"
)

// AcademicPlanController handles academic plan endpoints.
type AcademicPlanController struct {
	planService *services.AcademicPlanService
}

// NewAcademicPlanController creates a new AcademicPlanController.
func NewAcademicPlanController(planService *services.AcademicPlanService) *AcademicPlanController {
	return &AcademicPlanController{
		planService: planService,
	}
}

// GetAllPlans lists academic plans
// @Summary List academic plans
// @Description Lists all plans with student and subject resolved inline. A dangling reference is returned as null.
// @Tags academic-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AcademicPlan
// @Failure 500 {object} dto.MessageResponse
// @Router /academic-plans [get]
func (c *AcademicPlanController) GetAllPlans(ctx *gin.Context) {
	plans, err := c.planService.GetAllPlans(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plans)
}

// GetPlanByID fetches one academic plan
// @Summary Get academic plan by ID
// @Tags academic-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} models.AcademicPlan
// @Failure 404 {object} dto.MessageResponse "Academic plan not found"
// @Router /academic-plans/{id} [get]
func (c *AcademicPlanController) GetPlanByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Plan ID must be a valid number"))
		return
	}

	plan, err := c.planService.GetPlanByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// CreatePlan creates an academic plan
// @Summary Create an academic plan
// @Tags academic-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicPlanRequest true "Plan fields"
// @Success 201 {object} models.AcademicPlan
// @Failure 400 {object} dto.MessageResponse
// @Router /academic-plans [post]
func (c *AcademicPlanController) CreatePlan(ctx *gin.Context) {
	var req dto.CreateAcademicPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid plan data: "+err.Error()))
		return
	}

	plan, err := c.planService.CreatePlan(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, plan)
}

// UpdatePlan writes the final grade
// @Summary Update the final grade
// @Description Writes finalGrade from the body; a null or absent grade clears it.
// @Tags academic-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Param request body dto.UpdateAcademicPlanRequest true "Grade"
// @Success 200 {object} models.AcademicPlan
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /academic-plans/{id} [patch]
func (c *AcademicPlanController) UpdatePlan(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Plan ID must be a valid number"))
		return
	}

	var req dto.UpdateAcademicPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid plan data: "+err.Error()))
		return
	}

	plan, err := c.planService.UpdatePlan(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// DeletePlan deletes an academic plan
// @Summary Delete an academic plan
// @Tags academic-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.MessageResponse "Academic plan deleted"
// @Failure 404 {object} dto.MessageResponse
// @Router /academic-plans/{id} [delete]
func (c *AcademicPlanController) DeletePlan(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Plan ID must be a valid number"))
		return
	}

	if err := c.planService.DeletePlan(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Academic plan deleted"))
}
