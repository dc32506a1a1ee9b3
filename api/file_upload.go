package api

import (
	"net/http"
	"strings"

	"studyvault/edu-api/model"
	"studyvault/edu-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) FileUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	if !strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/form-data") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request",
			"requestID": requestID,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to parse multipart form", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file uploaded",
			"requestID": requestID,
		})
		return
	}

	fh := files[0]

	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open uploaded file", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer src.Close()

	// The blob is staged first, the way the transport hands it over.
	// Everything that fails past this point has to clean it up again
	storedName, err := a.Store.Save(src, fh.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to stage uploaded blob", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	subject := c.PostForm("subject")
	title := c.PostForm("title")
	fileType := c.PostForm("fileType")

	if details := validators.UploadFieldsValidator(subject, title, fileType); details != nil {
		a.discardBlob(storedName, requestID)

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Missing required fields",
			"details":   details,
			"requestID": requestID,
		})
		return
	}

	file := model.File{
		UserID:       userID,
		Subject:      subject,
		Title:        title,
		FileType:     fileType,
		OriginalName: fh.Filename,
		StoredName:   storedName,
	}

	if err := a.DB.Create(&file).Error; err != nil {
		a.discardBlob(storedName, requestID)

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save file record to db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"fileId":  file.ID,
	})
}

// discardBlob is the compensating half of the blob-first, row-second
// upload sequence. Best effort: its own failure is logged and forgotten,
// the orphan sweep picks up the leftovers
func (a *API) discardBlob(name, requestID string) {
	if err := a.Store.Delete(name); err != nil {
		zap.L().Error("Failed to delete staged blob", zap.Error(err), zap.String("requestID", requestID))
	}
}
