package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	api_types "pmsdesk/api-types"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/category"
	"pmsdesk/internal/config"
	"pmsdesk/internal/resolver"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var qcodePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type apiHandler struct {
	Resolver resolver.Resolver
	Logger   logrus.FieldLogger
}

func StartApi(port int, r resolver.Resolver, logger logrus.FieldLogger, blockedIPs []string) error {
	router, err := NewRouter(r, logger, blockedIPs...)
	if err != nil {
		return err
	}
	logger.WithField("port", port).Info("starting api")
	return router.Run(fmt.Sprintf(":%d", port))
}

func NewRouter(r resolver.Resolver, logger logrus.FieldLogger, blockedIPs ...string) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}
	h := apiHandler{Resolver: r, Logger: logger}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(blockBots(blockedIPs))
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to pmsdesk"})
	})

	router.POST("/api/upload/:category", h.upload)
	router.POST("/api/sync/:category", h.sync)
	router.GET("/api/sync-history/:category", h.syncHistory)
	router.POST("/api/delete-records/:category", h.deleteRecords)
	router.POST("/api/twrr", h.twrr)
	router.POST("/api/twrr/upload", h.twrrUpload)

	return router, nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("qcode", func(fl validator.FieldLevel) bool {
		return qcodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
}

func (h apiHandler) category(c *gin.Context) (category.Category, bool) {
	cat, err := category.Parse(c.Param("category"))
	if err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return "", false
	}
	return cat, true
}

func (h apiHandler) upload(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}

	var req api_types.UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		h.returnErrorJsonCode(fmt.Errorf("invalid upload form: %w", err), c, http.StatusBadRequest)
		return
	}

	file, closeFile, err := formFile(c, "file")
	if err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	defer closeFile()

	resp, err := h.Resolver.Upload(c.Request.Context(), cat, req, file)
	if err != nil {
		h.returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h apiHandler) sync(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}

	var req api_types.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	resp, err := h.Resolver.Sync(c.Request.Context(), cat, req)
	if err != nil {
		h.returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h apiHandler) syncHistory(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}

	var req api_types.SyncHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.returnErrorJsonCode(fmt.Errorf("invalid query: %w", err), c, http.StatusBadRequest)
		return
	}

	resp, err := h.Resolver.SyncHistory(c.Request.Context(), cat, req)
	if err != nil {
		h.returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h apiHandler) deleteRecords(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}

	var req api_types.DeleteRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	resp, err := h.Resolver.DeleteRecords(c.Request.Context(), cat, req)
	if err != nil {
		h.returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h apiHandler) twrr(c *gin.Context) {
	var req api_types.TwrrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnErrorJsonCode(
			errors.New("Missing required data: transactionData, aumData, and accountCode are required"),
			c,
			http.StatusBadRequest,
		)
		return
	}

	resp, err := h.Resolver.Twrr(c.Request.Context(), req)
	if err != nil {
		h.returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h apiHandler) twrrUpload(c *gin.Context) {
	var req api_types.TwrrUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		h.returnErrorJsonCode(fmt.Errorf("invalid upload form: %w", err), c, http.StatusBadRequest)
		return
	}

	transactions, closeTransactions, err := formFile(c, "transactionFile")
	if err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	defer closeTransactions()

	aum, closeAum, err := formFile(c, "aumFile")
	if err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	defer closeAum()

	resp, err := h.Resolver.TwrrUpload(c.Request.Context(), req, transactions, aum)
	if err != nil {
		h.returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func formFile(c *gin.Context, field string) (resolver.UploadedFile, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return resolver.UploadedFile{}, nil, fmt.Errorf("%s is required", field)
	}
	f, err := header.Open()
	if err != nil {
		return resolver.UploadedFile{}, nil, fmt.Errorf("failed to open %s: %w", header.Filename, err)
	}
	return resolver.UploadedFile{Name: header.Filename, Reader: f}, closer(f), nil
}

func closer(f multipart.File) func() {
	return func() {
		f.Close()
	}
}

// statusCode maps service errors onto HTTP statuses. Anything unrecognized
// is a 500.
func statusCode(err error) int {
	var (
		invalidInput    desk_errors.ErrInvalidInput
		invalidFile     desk_errors.ErrInvalidFile
		emptyFile       desk_errors.ErrEmptyFile
		missingColumns  desk_errors.ErrMissingColumns
		invalidAccount  desk_errors.ErrInvalidAccount
		unknownCategory desk_errors.ErrUnknownCategory
		formatErr       desk_errors.FormatError
		noData          desk_errors.ErrNoData
	)
	switch {
	case errors.As(err, &noData):
		return http.StatusNotFound
	case errors.As(err, &invalidInput),
		errors.As(err, &invalidFile),
		errors.As(err, &emptyFile),
		errors.As(err, &missingColumns),
		errors.As(err, &invalidAccount),
		errors.As(err, &unknownCategory),
		errors.As(err, &formatErr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h apiHandler) returnErrorJson(err error, c *gin.Context) {
	h.returnErrorJsonCode(err, c, statusCode(err))
}

func (h apiHandler) returnErrorJsonCode(err error, c *gin.Context, code int) {
	if code >= http.StatusInternalServerError {
		config.LogError(h.Logger, "api", c.FullPath(), nil, err)
	} else {
		h.Logger.WithField("path", c.FullPath()).Warn(err.Error())
	}

	body := api_types.ErrorResponse{Error: err.Error()}
	var missingColumns desk_errors.ErrMissingColumns
	if errors.As(err, &missingColumns) {
		body.ColumnNames = missingColumns.ColumnNames
	}
	c.AbortWithStatusJSON(code, body)
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()
		logger.WithFields(logrus.Fields{
			"requestId": requestID,
			"method":    c.Request.Method,
			"path":      c.FullPath(),
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
		}).Info("request")
	}
}

func blockBots(blockedIPs []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		for _, ip := range blockedIPs {
			if ip == clientIP {
				c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
