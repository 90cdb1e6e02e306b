package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}

// Source records where input was read from ("-" for stdin).
func Source(path string) slog.Attr {
	return slog.String("source", path)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Outcome groups valid and invalid totals of a validation run.
func Outcome(valid, invalid int) slog.Attr {
	return Group("outcome",
		slog.Int("valid", valid),
		slog.Int("invalid", invalid),
	)
}
