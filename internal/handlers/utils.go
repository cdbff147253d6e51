package handlers

import (
	stderrors "errors"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxBodyBytes bounds the raw JSON bodies forwarded to entity decoders.
const maxBodyBytes = 1 << 20

var (
	errInvalidSessionID = stderrors.New("session id must be a UUID")
	errInvalidEntityID  = stderrors.New("entity id must be a positive integer")
	errInvalidJobID     = stderrors.New("job id must be a UUID")
)

func parseSessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidSessionID
	}
	return id, nil
}

func parseEntityID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("entityId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidEntityID
	}
	return id, nil
}

func parseJobID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return uuid.Nil, errInvalidJobID
	}
	return id, nil
}

func readBody(c echo.Context) ([]byte, error) {
	return io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
}
