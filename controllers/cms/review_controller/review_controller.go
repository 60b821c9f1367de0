package review_controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetReviews godoc
// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param productId query string false "Product ID"
// @Param status query string false "pending, approved or rejected"
// @Param rating query int false "Exact rating 1-5"
// @Param search query string false "Reviewer, title or comment"
// @Success 200 {object} models.ApiResponse
// @Router /api/reviews [get]
func GetReviews(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Review{})
	if raw := c.Query("productId"); raw != "" {
		productID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
			return
		}
		query = query.Where("product_id = ?", productID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if rating := utils.QueryInt(c, "rating", 0); rating >= 1 && rating <= 5 {
		query = query.Where("rating = ?", rating)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := utils.LikePattern(search)
		query = query.Where(
			"LOWER(user_name) LIKE ? ESCAPE '\\' OR LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(comment) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[reviews.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reviews"))
		return
	}
	reviews := []models.Review{}
	if err := query.Order("created_at DESC").Limit(page.Limit).Offset(page.Offset).Find(&reviews).Error; err != nil {
		logger.L().Error("[reviews.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reviews"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Reviews fetched successfully", reviews, page.Meta(total)))
}

// GetReviewByID godoc
// @Summary Get a review
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/reviews/{id} [get]
func GetReviewByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "review")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var review models.Review
	if err := config.DB.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[reviews.get]", err, "Review")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review fetched successfully", review))
}

// CreateReview godoc
// @Summary Create a review
// @Description productId must reference an existing product; the product name is copied onto the review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body models.ReviewRequest true "Review"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/reviews [post]
func CreateReview(c *gin.Context) {
	var req models.ReviewRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	product, ok := reviewedProduct(ctx, c, req.ProductID)
	if !ok {
		return
	}

	review := models.Review{
		ProductID:   product.ID,
		ProductName: product.Name,
		UserName:    strings.TrimSpace(req.UserName),
		UserEmail:   strings.ToLower(strings.TrimSpace(req.UserEmail)),
		Rating:      req.Rating,
		Title:       strings.TrimSpace(req.Title),
		Comment:     strings.TrimSpace(req.Comment),
		Status:      req.Status,
	}
	if review.Status == "" {
		review.Status = models.ReviewStatusPending
	}

	if err := config.DB.WithContext(ctx).Create(&review).Error; err != nil {
		logger.L().Error("[reviews.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create review"))
		return
	}
	services.SetCreatedResource(c, review.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review created successfully", review))
}

// ReplaceReview godoc
// @Summary Replace a review (PUT)
// @Description Every field is overwritten; productId must reference an existing product
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param review body models.ReviewRequest true "Review"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/reviews/{id} [put]
func ReplaceReview(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "review")
	if !ok {
		return
	}
	var req models.ReviewRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var review models.Review
	if err := config.DB.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[reviews.replace]", err, "Review")
		return
	}
	product, ok := reviewedProduct(ctx, c, req.ProductID)
	if !ok {
		return
	}

	review.ProductID = product.ID
	review.ProductName = product.Name
	review.UserName = strings.TrimSpace(req.UserName)
	review.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))
	review.Rating = req.Rating
	review.Title = strings.TrimSpace(req.Title)
	review.Comment = strings.TrimSpace(req.Comment)
	review.Status = req.Status
	if review.Status == "" {
		review.Status = models.ReviewStatusPending
	}

	if err := config.DB.WithContext(ctx).Save(&review).Error; err != nil {
		utils.RespondDBError(c, "[reviews.replace]", err, "Review")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review replaced successfully", review))
}

// UpdateReview godoc
// @Summary Update a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param review body models.UpdateReviewRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /api/reviews/{id} [patch]
func UpdateReview(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "review")
	if !ok {
		return
	}
	var req models.UpdateReviewRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var review models.Review
	if err := config.DB.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[reviews.update]", err, "Review")
		return
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = strings.TrimSpace(*req.Title)
	}
	if req.Comment != nil {
		review.Comment = strings.TrimSpace(*req.Comment)
	}
	if err := config.DB.WithContext(ctx).Save(&review).Error; err != nil {
		utils.RespondDBError(c, "[reviews.update]", err, "Review")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review updated successfully", review))
}

// UpdateReviewStatus godoc
// @Summary Moderate a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param status body models.UpdateReviewStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Router /api/reviews/{id}/status [patch]
func UpdateReviewStatus(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "review")
	if !ok {
		return
	}
	var req models.UpdateReviewStatusRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var review models.Review
	if err := config.DB.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[reviews.status]", err, "Review")
		return
	}
	if err := config.DB.WithContext(ctx).Model(&review).Update("status", req.Status).Error; err != nil {
		utils.RespondDBError(c, "[reviews.status]", err, "Review")
		return
	}
	review.Status = req.Status
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review status updated successfully", review))
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "review")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		utils.RespondDBError(c, "[reviews.delete]", res.Error, "Review")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Review not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review deleted successfully", gin.H{"id": id}))
}

// reviewedProduct answers 400 on productId when the product does not exist.
func reviewedProduct(ctx context.Context, c *gin.Context, id uuid.UUID) (models.Product, bool) {
	var product models.Product
	if err := config.DB.WithContext(ctx).Select("id", "name").First(&product, "id = ?", id).Error; err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", map[string]string{
				"productId": "Product does not exist",
			}))
			return product, false
		}
		utils.RespondDBError(c, "[reviews]", err, "Product")
		return product, false
	}
	return product, true
}
