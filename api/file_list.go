package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fileListing is the shared shape of every file listing: the file rows
// plus whether the calling user has favorited each one
func (a *API) fileListing(userID string) *gorm.DB {
	return a.DB.
		Model(&model.File{}).
		Select("files.*, favorites.id IS NOT NULL AS is_favorite").
		Joins("LEFT JOIN favorites ON favorites.file_id = files.id AND favorites.user_id = ?", userID)
}

func (a *API) FilesBySubject(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	subject := c.Query("subject")
	if subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Subject parameter is required",
			"requestID": requestID,
		})
		return
	}

	var files []model.File

	err := a.fileListing(userID).
		Where("files.subject = ?", subject).
		Order("files.created_at desc").
		Find(&files).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list files by subject", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, files)
}

func (a *API) FilesMyUploads(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var files []model.File

	err := a.fileListing(userID).
		Where("files.user_id = ?", userID).
		Order("files.created_at desc").
		Find(&files).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list user uploads", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, files)
}

func (a *API) FilesFavorites(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var files []model.File

	err := a.DB.
		Model(&model.File{}).
		Select("files.*, 1 AS is_favorite").
		Joins("INNER JOIN favorites ON favorites.file_id = files.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Find(&files).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list favorites", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, files)
}

func (a *API) FilesAll(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var files []model.File

	err := a.fileListing(userID).
		Order("files.created_at desc").
		Find(&files).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list files", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, files)
}
