package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type subjectBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// requireAdmin gates the subject catalog. The catalog is global state,
// letting every student rewrite it was an accident waiting to happen
func (a *API) requireAdmin(c *gin.Context, requestID string) bool {
	user := c.MustGet("user").(*model.User)

	if !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Admin role required",
			"requestID": requestID,
		})
		return false
	}

	return true
}

func (a *API) SubjectCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if !a.requireAdmin(c, requestID) {
		return
	}

	var data subjectBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Subject name is required",
			"requestID": requestID,
		})
		return
	}

	subject := model.Subject{
		Name:        data.Name,
		Description: data.Description,
	}

	if err := a.DB.Create(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create subject", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, subject)
}

func (a *API) SubjectUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if !a.requireAdmin(c, requestID) {
		return
	}

	var data subjectBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Subject name is required",
			"requestID": requestID,
		})
		return
	}

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

	subject.Name = data.Name
	subject.Description = data.Description

	if err := a.DB.Save(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update subject", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, subject)
}

func (a *API) SubjectDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if !a.requireAdmin(c, requestID) {
		return
	}

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

	if err := a.DB.Delete(&model.Subject{}, subject.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete subject", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subject deleted successfully",
	})
}
