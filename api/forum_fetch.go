package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) QuestionsBySubject(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var questions []model.Question

	err := a.DB.
		Model(&model.Question{}).
		Select("questions.*, users.email AS author_email").
		Joins("JOIN users ON users.id = questions.user_id").
		Where("questions.subject_id = ?", c.Param("subjectId")).
		Order("questions.created_at desc").
		Find(&questions).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list questions", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, questions)
}

// QuestionFetch returns one question with its answers, oldest answer
// first
func (a *API) QuestionFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var question model.Question

	err := a.DB.
		Model(&model.Question{}).
		Select("questions.*, users.email AS author_email").
		Joins("JOIN users ON users.id = questions.user_id").
		Where("questions.id = ?", c.Param("questionId")).
		First(&question).
		Error
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

		zap.L().Error("Failed to fetch question", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var answers []model.Answer

	err = a.DB.
		Model(&model.Answer{}).
		Select("answers.*, users.email AS author_email").
		Joins("JOIN users ON users.id = answers.user_id").
		Where("answers.question_id = ?", question.ID).
		Order("answers.created_at asc").
		Find(&answers).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch answers", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question": question,
		"answers":  answers,
	})
}
