package overrides

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/randalmurphal/overrides/target"
)

// write is one attempt of the coercion chain.
type write struct {
	outcome Outcome
	convert func(raw string) (any, bool)
}

// coercions is tried in order; the first accepted write wins.
var coercions = []write{
	{OutcomeApplied, func(raw string) (any, bool) { return raw, true }},
	{OutcomeCoercedInt, func(raw string) (any, bool) {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, false
		}
		return int(n), true
	}},
	{OutcomeCoercedBool, func(raw string) (any, bool) {
		return strings.EqualFold(raw, "true"), true
	}},
}

// setProperty writes raw to key of t, trying it as a string, then as an int,
// then as a bool. When present is false nothing is written and the decision
// is OutcomeUnset.
func setProperty(ctx context.Context, logger *slog.Logger, level slog.Level, t target.Target, d Decision, raw string, present bool) Decision {
	if !present {
		logger.Debug("unset override", slog.String("property", d.QualifiedName))
		d.Outcome = OutcomeUnset
		return d
	}

	d.Value = raw
	logger.Log(ctx, level, "applying override",
		slog.String("property", d.QualifiedName),
		slog.String("value", raw))

	var first error
	for _, w := range coercions {
		v, ok := w.convert(raw)
		if !ok {
			continue
		}
		err := t.Put(d.Key, v)
		if err == nil {
			if w.outcome != OutcomeApplied {
				logger.Debug("override coerced",
					slog.String("property", d.QualifiedName),
					slog.String("outcome", string(w.outcome)))
			}
			d.Outcome = w.outcome
			return d
		}
		if first == nil {
			first = err
		}
	}

	logger.Warn("override failed",
		slog.String("property", d.QualifiedName),
		slog.String("value", raw),
		slog.String("error", first.Error()))
	d.Outcome = OutcomeFailed
	d.Err = first
	return d
}
