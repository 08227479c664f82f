package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetEmailID(ctx *gin.Context) (uint64, error) {
	return getIDParam(ctx, "email_id")
}

func GetAlertID(ctx *gin.Context) (uint64, error) {
	return getIDParam(ctx, "alert_id")
}

func getIDParam(ctx *gin.Context, name string) (uint64, error) {
	idStr := ctx.Param(name)

	if idStr == "" {
		return 0, errors.New("missing " + name)
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("invalid " + name)
	}

	return id, nil
}
