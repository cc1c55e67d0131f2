package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/core/domain"
	"taskmanager/pkg/apierrors"
)

// pathID reads a positive numeric path parameter, answering 400 when it is not one.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return 0, false
	}
	return id, true
}

func pathIDs(c *gin.Context, first, second string) (uint64, uint64, bool) {
	a, ok := pathID(c, first)
	if !ok {
		return 0, 0, false
	}
	b, ok := pathID(c, second)
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

func abort(c *gin.Context, code int, msgKey string) {
	c.AbortWithStatusJSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)))
}

// domainErrors maps the recoverable domain errors to a status and message.
var domainErrors = []struct {
	err    error
	code   int
	msgKey string
}{
	{domain.ErrProjectNotFound, http.StatusNotFound, apierrors.MsgProjectNotFound},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrProjectHasPendingTasks, http.StatusBadRequest, apierrors.MsgProjectHasPendingTasks},
	{domain.ErrTaskLimitReached, http.StatusBadRequest, apierrors.MsgTaskLimitReached},
	{domain.ErrPriorityImmutable, http.StatusBadRequest, apierrors.MsgPriorityImmutable},
	{domain.ErrInvalidReference, http.StatusBadRequest, apierrors.MsgInvalidReference},
	{domain.ErrNotManager, http.StatusUnauthorized, apierrors.MsgNotManager},
}

// abortWithError answers with the mapped status for known domain errors and
// logs anything else as a 500 with fallbackKey.
func abortWithError(c *gin.Context, err error, fallbackKey string, logMsg string, fields ...zap.Field) {
	abortWithStatus(c, http.StatusInternalServerError, err, fallbackKey, logMsg, fields...)
}

// abortWithFault is abortWithError for writes and the report, whose unexpected
// failures answer 400.
func abortWithFault(c *gin.Context, err error, fallbackKey string, logMsg string, fields ...zap.Field) {
	abortWithStatus(c, http.StatusBadRequest, err, fallbackKey, logMsg, fields...)
}

func abortWithStatus(c *gin.Context, fallbackCode int, err error, fallbackKey string, logMsg string, fields ...zap.Field) {
	for _, known := range domainErrors {
		if errors.Is(err, known.err) {
			abort(c, known.code, known.msgKey)
			return
		}
	}

	_ = c.Error(err)
	fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	zap.L().Error(logMsg, fields...)
	abort(c, fallbackCode, fallbackKey)
}
