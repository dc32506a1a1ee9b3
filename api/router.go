// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"studyvault/edu-api/config"
	"studyvault/edu-api/db"
	"studyvault/edu-api/internal/service"
	"studyvault/edu-api/middleware"
	"studyvault/edu-api/pkg/security"
	"studyvault/edu-api/storage"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Store  *storage.Store
}

// New builds the router on top of injected dependencies. Tests hand in
// an in-memory database and a throwaway blob store here
func New(d *gorm.DB, st *storage.Store) *API {
	a := &API{
		DB:    d,
		Argon: security.New(),
		Store: st,
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	auth := middleware.NewAuthMiddleware(d)
	authLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 5,
		Burst:             10,
	})
	maxUploadSize := viper.GetInt64("upload.max_size")

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a bearer token
		main.HEAD("/validate", auth, a.Validate)
	}

	users := main.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/users/register	-> Registers a new user and returns a token
		users.POST("/register", authLimiter, a.UserRegister)

		// POST /api/users/login	-> Logs in a user and returns a token
		users.POST("/login", authLimiter, a.UserLogin)

		// GET /api/users/profile	-> Returns the caller's public fields
		users.GET("/profile", auth, a.UserProfile)
	}

	files := main.Group("/files", auth)
	{
		// GET /api/files/subject	-> Lists files in a subject, with favorite flag
		files.GET("/subject", a.FilesBySubject)

		// GET /api/files/myuploads	-> Lists the caller's own uploads
		files.GET("/myuploads", a.FilesMyUploads)

		// GET /api/files/favorites	-> Lists the caller's favorited files
		files.GET("/favorites", a.FilesFavorites)

		// GET /api/files/all		-> Lists every file, with favorite flag
		files.GET("/all", a.FilesAll)

		// POST /api/files/upload	-> Uploads a new file
		files.POST("/upload", middleware.BodySizeLimiter(maxUploadSize), a.FileUpload)

		// GET /api/files/:filename	-> Downloads a file by its stored name
		files.GET("/:filename", a.FileDownload)

		// DELETE /api/files/:fileId	-> Deletes a file (owner or admin)
		files.DELETE("/:fileId", a.FileDelete)

		// POST /api/files/:fileId/favorite -> Toggles the favorite flag
		files.POST("/:fileId/favorite", a.FileFavoriteToggle)
	}

	subjects := main.Group("/subjects", auth)
	{
		// GET /api/subjects		-> Lists the subject catalog
		subjects.GET("", cacheFor(10), a.SubjectList)

		// GET /api/subjects/:id	-> Returns one subject
		subjects.GET("/:id", a.SubjectFetch)

		// POST /api/subjects		-> Creates a subject (admin)
		subjects.POST("", a.SubjectCreate)

		// PUT /api/subjects/:id	-> Updates a subject (admin)
		subjects.PUT("/:id", a.SubjectUpdate)

		// DELETE /api/subjects/:id	-> Deletes a subject (admin)
		subjects.DELETE("/:id", a.SubjectDelete)
	}

	forum := main.Group("/forum", auth)
	{
		// GET /api/forum/subject/:subjectId	-> Lists questions in a subject
		forum.GET("/subject/:subjectId", a.QuestionsBySubject)

		// GET /api/forum/question/:questionId	-> Returns a question with its answers
		forum.GET("/question/:questionId", a.QuestionFetch)

		// POST /api/forum/question		-> Creates a question
		forum.POST("/question", a.QuestionCreate)

		// POST /api/forum/question/:questionId/answer -> Creates an answer
		forum.POST("/question/:questionId/answer", a.AnswerCreate)

		// DELETE /api/forum/question/:questionId -> Deletes a question (owner or admin)
		forum.DELETE("/question/:questionId", a.QuestionDelete)

		// DELETE /api/forum/answer/:answerId	-> Deletes an answer (owner or admin)
		forum.DELETE("/answer/:answerId", a.AnswerDelete)
	}

	return a
}

// NewRouter wires the production dependencies: real database, uploads
// directory, subject seed and the orphan blob sweep
func NewRouter() (*API, error) {
	d, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	st, err := storage.New(viper.GetString("storage.path"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store, %w", err)
	}

	if config.SeedSubjects() {
		if err := db.Seed(d); err != nil {
			return nil, fmt.Errorf("failed to seed subjects, %w", err)
		}
	}

	service.OrphanSweep(viper.GetDuration("cleanup.interval"), d, st)

	return New(d, st), nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
