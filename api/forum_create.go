package api

import (
	"net/http"
	"strconv"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type questionBody struct {
	SubjectID uint   `json:"subjectId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type answerBody struct {
	Content string `json:"content"`
}

func (a *API) QuestionCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data questionBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.SubjectID == 0 || data.Title == "" || data.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Missing required fields: subjectId, title, content",
			"requestID": requestID,
		})
		return
	}

	question := model.Question{
		UserID:    userID,
		SubjectID: data.SubjectID,
		Title:     data.Title,
		Content:   data.Content,
	}

	if err := a.DB.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create question", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Question created successfully",
		"questionId": question.ID,
		"createdAt":  question.CreatedAt,
	})
}

func (a *API) AnswerCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	questionID, err := strconv.ParseUint(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid question ID",
			"requestID": requestID,
		})
		return
	}

	var data answerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Answer content is required",
			"requestID": requestID,
		})
		return
	}

	err = a.DB.Where("id = ?", questionID).First(&model.Question{}).Error
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

	answer := model.Answer{
		UserID:     userID,
		QuestionID: uint(questionID),
		Content:    data.Content,
	}

	if err := a.DB.Create(&answer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create answer", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Answer created successfully",
		"answerId":  answer.ID,
		"createdAt": answer.CreatedAt,
	})
}
