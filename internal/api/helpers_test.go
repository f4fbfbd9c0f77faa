package api

import (
	"io"
	"log/slog"
	"strconv"
)

func jsonNumber(id int64) string { return strconv.FormatInt(id, 10) }

func nopLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }
