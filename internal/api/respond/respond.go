// Package respond renders store errors and binding failures as JSON error
// bodies of the form {"error": kind, "message": reason}.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"vinyl-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindValidation   = "validation"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindInternal     = "internal"
)

var kinds = []struct {
	sentinel error
	status   int
	kind     string
}{
	{store.ErrNotFound, http.StatusNotFound, KindNotFound},
	{store.ErrConflict, http.StatusConflict, KindConflict},
	{store.ErrValidation, http.StatusBadRequest, KindValidation},
}

// Status maps a store error to its HTTP status and kind.
func Status(err error) (int, string) {
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.status, k.kind
		}
	}
	return http.StatusInternalServerError, KindInternal
}

// Error writes err with the status of its kind. The message drops the kind
// prefix the store puts in front of the reason.
func Error(c *gin.Context, err error) {
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			msg := strings.TrimPrefix(err.Error(), k.sentinel.Error()+": ")
			c.AbortWithStatusJSON(k.status, gin.H{"error": k.kind, "message": msg})
			return
		}
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": KindInternal, "message": "internal error"})
}

func Fail(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": kind, "message": message})
}

func NotFound(c *gin.Context, entity string, id int) {
	Fail(c, http.StatusNotFound, KindNotFound, fmt.Sprintf("%s %d not found", entity, id))
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, KindConflict, message)
}

// Validation renders a ShouldBindJSON failure. Validator errors list the
// failing fields by their JSON name.
func Validation(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		names := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			fields[fe.Field()] = rule
			names = append(names, fe.Field())
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   KindValidation,
			"message": "invalid fields: " + strings.Join(names, ", "),
			"fields":  fields,
		})
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		Fail(c, http.StatusBadRequest, KindValidation, fmt.Sprintf("field %s must be %s", typeErr.Field, typeErr.Type))
		return
	}
	Fail(c, http.StatusBadRequest, KindValidation, "malformed request body")
}

// ParamID parses a positive integer path parameter. It writes a 400 and
// returns false when the value is not one.
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		Fail(c, http.StatusBadRequest, KindValidation, fmt.Sprintf("%s must be a positive integer", name))
		return 0, false
	}
	return id, true
}
