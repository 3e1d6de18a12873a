package basketapi

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/hoopscout/internal/domain/team"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

// OriginID names a regional backend.
type OriginID string

const (
	OriginSouth     OriginID = "S"
	OriginNorth     OriginID = "N"
	OriginCanonical OriginID = "api-1"
)

func (o OriginID) String() string {
	return string(o)
}

// DivisionResolver maps a team to its division. The config registry
// satisfies it.
type DivisionResolver interface {
	Division(teamID int64) team.Division
}

// Attempt is the outcome of asking one origin.
type Attempt struct {
	Origin OriginID
	Body   []byte
	Err    error
}

// OriginUnavailableError lists every failed attempt of one logical call.
type OriginUnavailableError struct {
	Path     string
	Attempts []Attempt
}

func (e *OriginUnavailableError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Origin, a.Err))
	}
	return fmt.Sprintf("%s %s: %s", usecase.ErrOriginUnavailable, e.Path, strings.Join(parts, "; "))
}

func (e *OriginUnavailableError) Is(target error) bool {
	return target == usecase.ErrOriginUnavailable || target == usecase.ErrDependencyUnavailable
}

// regionalOrder returns the divisional origin first, then the other one.
// Teams of unknown division start with the southern origin.
func regionalOrder(d team.Division) []OriginID {
	if d == team.DivisionNorth {
		return []OriginID{OriginNorth, OriginSouth}
	}
	return []OriginID{OriginSouth, OriginNorth}
}

// teamDetailOrder puts the canonical index in front of the regional order.
func teamDetailOrder(d team.Division) []OriginID {
	return append([]OriginID{OriginCanonical}, regionalOrder(d)...)
}

type router struct {
	origins map[OriginID]*origin
	fetch   *fetcher
}

// attempts asks each candidate in turn, yielding every outcome. Callers stop
// ranging on the first success.
func (r *router) attempts(ctx context.Context, candidates []OriginID, path string, query url.Values, timeout time.Duration) iter.Seq[Attempt] {
	return func(yield func(Attempt) bool) {
		for _, id := range candidates {
			if ctx.Err() != nil {
				yield(Attempt{Origin: id, Err: ctx.Err()})
				return
			}
			o, ok := r.origins[id]
			if !ok {
				continue
			}
			body, err := r.fetch.get(ctx, o, path, query, timeout)
			if !yield(Attempt{Origin: id, Body: body, Err: err}) {
				return
			}
		}
	}
}

// first returns the body of the first successful attempt.
func (r *router) first(ctx context.Context, candidates []OriginID, path string, query url.Values, timeout time.Duration) ([]byte, OriginID, error) {
	failed := make([]Attempt, 0, len(candidates))
	for a := range r.attempts(ctx, candidates, path, query, timeout) {
		if a.Err == nil {
			return a.Body, a.Origin, nil
		}
		failed = append(failed, a)
	}
	return nil, "", r.exhausted(ctx, path, failed)
}

// all asks every candidate and returns each successful body in candidate
// order. It fails only when no origin answered.
func (r *router) all(ctx context.Context, candidates []OriginID, path string, query url.Values, timeout time.Duration) ([]Attempt, error) {
	ok := make([]Attempt, 0, len(candidates))
	failed := make([]Attempt, 0)
	for a := range r.attempts(ctx, candidates, path, query, timeout) {
		if a.Err != nil {
			failed = append(failed, a)
			continue
		}
		ok = append(ok, a)
	}
	if len(ok) == 0 {
		return nil, r.exhausted(ctx, path, failed)
	}
	if len(failed) > 0 {
		r.fetch.logger.DebugContext(ctx, "partial fan-out", "path", path, "failed", len(failed), "ok", len(ok))
	}
	return ok, nil
}

func (r *router) exhausted(ctx context.Context, path string, failed []Attempt) error {
	if ctx.Err() != nil {
		return crerr.Wrapf(ctx.Err(), "fetch %s", path)
	}
	notFound := len(failed) > 0
	for _, a := range failed {
		if !isNotFound(a.Err) {
			notFound = false
			break
		}
	}
	if notFound {
		return fmt.Errorf("%w: %s", usecase.ErrNotFound, path)
	}

	err := &OriginUnavailableError{Path: path, Attempts: failed}
	r.fetch.logger.WarnContext(ctx, "all origins failed", "path", path, "error", err)
	return err
}
