package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pedroShimpa/retro-inventory/internal/repositories"
)

var registerOnce sync.Once

// UseJSONFieldNames makes validation errors report json field names
// ("console_id") instead of Go field names ("ConsoleID").
func UseJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "retro game inventory API is running"})
}

// parseID reads the :id path parameter. It writes a 422 and returns false
// when the parameter is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "invalid id",
			"fields": gin.H{"id": "must be a positive integer"},
		})
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds the request body into dst and writes a 422 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	body := gin.H{"error": "invalid request body"}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &verrs):
		fields := gin.H{}
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		body["fields"] = fields
	case errors.As(err, &typeErr):
		body["fields"] = gin.H{typeErr.Field: "must be " + typeErr.Type.String()}
	case errors.As(err, &syntaxErr):
		body["error"] = "malformed JSON"
	case errors.Is(err, io.EOF):
		body["error"] = "request body is required"
	}

	c.JSON(http.StatusUnprocessableEntity, body)
	return false
}

// respondError writes the HTTP error for a failed service call. notFound is
// the message used for missing records.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, repositories.ErrConsoleInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "console still has games"})
	case errors.Is(err, repositories.ErrConstraint):
		c.JSON(http.StatusConflict, gin.H{"error": "constraint violation"})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
