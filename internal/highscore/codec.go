package highscore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed reports stored content that cannot be read as a list of scores.
var ErrMalformed = errors.New("highscore: malformed ranking")

// Encode serializes r as a bare JSON array, e.g. [1000,900,800].
// A nil or empty ranking encodes as [].
func Encode(r Ranking) ([]byte, error) {
	if r == nil {
		r = Ranking{}
	}
	data, err := json.Marshal([]int(r))
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot encode ranking: %w", err)
	}
	return data, nil
}

// Decode parses a stored JSON array and returns it normalized.
// Every element must coerce to an int; one bad element rejects the whole
// payload.
func Decode(data []byte) (Ranking, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not an array", ErrMalformed)
	}
	// Only whitespace may follow the array
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformed)
	}

	scores := make([]int, 0, len(raw))
	for i, v := range raw {
		n, err := coerce(v)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformed, i, err)
		}
		scores = append(scores, n)
	}
	return Normalize(scores), nil
}

// coerce converts one decoded JSON value to an int.
func coerce(v any) (int, error) {
	switch x := v.(type) {
	case json.Number:
		return numberToInt(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("non-numeric string %q", x)
		}
		return n, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case nil:
		return 0, errors.New("null score")
	default:
		return 0, fmt.Errorf("unsupported value of type %T", v)
	}
}

// numberToInt truncates fractional numbers toward zero.
func numberToInt(n json.Number) (int, error) {
	if i, err := strconv.ParseInt(n.String(), 10, strconv.IntSize); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid number %s", n)
	}
	f = math.Trunc(f)
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("number %s out of range", n)
	}
	return int(f), nil
}
