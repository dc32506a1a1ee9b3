package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) FileDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(*model.User)

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

	if !canModify(user, file.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Not authorized to delete this file",
			"requestID": requestID,
		})
		return
	}

	// Blob first, best effort. A missing blob must not keep the row alive
	if err := a.Store.Delete(file.StoredName); err != nil {
		zap.L().Error("Failed to delete blob", zap.Error(err), zap.String("storedName", file.StoredName), zap.String("requestID", requestID))
	}

	if err := a.DB.Delete(&model.File{}, file.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete file row", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// The FK cascade handles favorites on drivers that enforce it; this
	// keeps sqlite without foreign_keys=on honest too
	if err := a.DB.Where("file_id = ?", file.ID).Delete(&model.Favorite{}).Error; err != nil {
		zap.L().Error("Failed to delete favorites of file", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File deleted successfully",
	})
}
