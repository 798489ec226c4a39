package log

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/reglet-dev/swiprint/format"
)

// writeAttr emits " key=value" for a, flattening groups into dotted keys.
func writeAttr(out format.Emitter, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(out, p, ga)
		}
		return
	}

	key := prefix + a.Key
	v := a.Value
	switch v.Kind() {
	case slog.KindInt64:
		if n := v.Int64(); n >= math.MinInt32 && n <= math.MaxInt32 {
			format.Printf(out, " %s=%d", key, int32(n))
			return
		}
	case slog.KindUint64:
		if n := v.Uint64(); n <= math.MaxUint32 {
			format.Printf(out, " %s=%u", key, uint32(n))
			return
		}
	}
	format.Printf(out, " %s=%s", key, valueString(v))
}

// valueString renders the values the engine has no directive for.
func valueString(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return quoteIfNeeded(v.String())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindAny:
		switch x := v.Any().(type) {
		case nil:
			return "<nil>"
		case error:
			return quoteIfNeeded(x.Error())
		case fmt.Stringer:
			return quoteIfNeeded(x.String())
		default:
			if data, err := json.Marshal(x); err == nil {
				return string(data)
			}
			return quoteIfNeeded(fmt.Sprintf("%+v", x))
		}
	}
	return quoteIfNeeded(v.String())
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\n\t") {
		return strconv.Quote(s)
	}
	return s
}
