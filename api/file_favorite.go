package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FileFavoriteToggle flips the (user, file) favorite pair: present
// becomes absent and the other way round. The file has to exist but
// doesn't have to be the caller's
func (a *API) FileFavoriteToggle(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fileID := c.Param("fileId")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "ID is missing",
			"requestID": requestID,
		})
		return
	}

	var file model.File

	err := a.DB.Where("id = ?", fileID).First(&file).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "File not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if file exists", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var fav model.Favorite

	err = a.DB.
		Where("file_id = ? AND user_id = ?", file.ID, userID).
		First(&fav).
		Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check favorite", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err == nil {
		if err := a.DB.Delete(&model.Favorite{}, fav.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to remove favorite", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "File removed from favorites",
		})
		return
	}

	if err := a.DB.Create(&model.Favorite{UserID: userID, FileID: file.ID}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to add favorite", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File added to favorites",
	})
}
