package repositories

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/pkg/utils"
)

var (
	nowFunc = func() time.Time { return time.Now().UTC() }
	newID   = utils.NewID
)

// encodeJSON stores a JSON value as text.
func encodeJSON(v null.JSON) null.String {
	if !v.Valid || len(v.JSON) == 0 {
		return null.String{}
	}
	return null.StringFrom(string(v.JSON))
}

// decodeJSON reads a JSON text column. Malformed text reads as null.
func decodeJSON(s null.String) null.JSON {
	if !s.Valid || !json.Valid([]byte(s.String)) {
		return null.JSON{}
	}
	return null.JSONFrom([]byte(s.String))
}

func encodeGoals(goals []string) string {
	if goals == nil {
		goals = []string{}
	}
	b, err := json.Marshal(goals)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeGoals never fails: anything but a JSON string array reads as empty.
func decodeGoals(s string) []string {
	var goals []string
	if err := json.Unmarshal([]byte(s), &goals); err != nil || goals == nil {
		return []string{}
	}
	return goals
}

func timeFromPtr(t *time.Time) null.Time {
	return null.TimeFromPtr(t)
}

func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, fmt.Errorf("%w: amount is nil", domainerrors.ErrInvalidInput)
		}
		return *x, nil
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: amount %q", domainerrors.ErrInvalidInput, x)
		}
		return d, nil
	case json.Number:
		return toDecimal(x.String())
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: amount of type %T", domainerrors.ErrInvalidInput, v)
	}
}

// toText accepts strings and named string types such as entities.InvestmentStatus.
func toText(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", fmt.Errorf("%w: unexpected value of type %T", domainerrors.ErrInvalidInput, v)
}

func utcPtr(t null.Time) *time.Time {
	if !t.Valid {
		return nil
	}
	u := t.Time.UTC()
	return &u
}
