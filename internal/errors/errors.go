package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// UserMessage formats err as the single line shown to the user when a run
// fails.
func UserMessage(err error) string {
	return fmt.Sprintf("Error: %s", err.Error())
}

// Report writes the user-facing line for err to w.
func Report(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, UserMessage(err))
	return werr
}

// TypeOf returns the type of the outermost AppError in err's chain, or an
// empty string when err carries none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// LogAttrs converts err into slog attributes: the message, its type and all
// context collected along the AppError chain. Outer context wins.
func LogAttrs(err error) []slog.Attr {
	attrs := []slog.Attr{slog.String("error", err.Error())}
	if t := TypeOf(err); t != "" {
		attrs = append(attrs, slog.String("error_type", string(t)))
	}

	merged := make(map[string]interface{})
	for cur := err; cur != nil; {
		var appErr *AppError
		if !stderrors.As(cur, &appErr) {
			break
		}
		for k, v := range appErr.Context {
			if _, seen := merged[k]; !seen {
				merged[k] = v
			}
		}
		cur = appErr.Cause
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, merged[k]))
	}
	return attrs
}
