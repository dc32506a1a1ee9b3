package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FileDownload streams a blob back under its original name. The row and
// the blob can disagree after a partial delete, so "no row" and "row but
// no blob" are reported separately
func (a *API) FileDownload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	filename := c.Param("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file name provided",
			"requestID": requestID,
		})
		return
	}

	var file model.File

	err := a.fileListing(userID).
		Where("files.stored_name = ?", filename).
		First(&file).
		Error
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

		zap.L().Error("Failed to look up file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !a.Store.Exists(file.StoredName) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "File not found on server",
			"requestID": requestID,
		})

		zap.L().Warn("File row without blob", zap.String("storedName", file.StoredName), zap.String("requestID", requestID))
		return
	}

	c.FileAttachment(a.Store.Path(file.StoredName), file.OriginalName)
}
