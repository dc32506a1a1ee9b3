package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) SubjectList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var subjects []model.Subject

	err := a.DB.Order("name asc").Find(&subjects).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list subjects", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, subjects)
}

func (a *API) SubjectFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var subject model.Subject

	err := a.DB.Where("id = ?", c.Param("id")).First(&subject).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Subject not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch subject", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, subject)
}
