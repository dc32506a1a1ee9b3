package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) QuestionDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(*model.User)

	var question model.Question

	err := a.DB.Where("id = ?", c.Param("questionId")).First(&question).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Question not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if question exists", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !canModify(user, question.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Not authorized to delete this question",
			"requestID": requestID,
		})
		return
	}

	if err := a.DB.Delete(&model.Question{}, question.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete question", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Keep sqlite honest about the cascade
	if err := a.DB.Where("question_id = ?", question.ID).Delete(&model.Answer{}).Error; err != nil {
		zap.L().Error("Failed to delete answers of question", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Question deleted successfully",
	})
}

func (a *API) AnswerDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(*model.User)

	var answer model.Answer

	err := a.DB.Where("id = ?", c.Param("answerId")).First(&answer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Answer not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if answer exists", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !canModify(user, answer.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Not authorized to delete this answer",
			"requestID": requestID,
		})
		return
	}

	if err := a.DB.Delete(&model.Answer{}, answer.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete answer", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Answer deleted successfully",
	})
}
