package session

import (
	"errors"

	"github.com/dmitrymomot/uigen/pkg/jwt"
)

// outcome classifies a session lookup.
type outcome string

const (
	outcomeValid   outcome = "valid"
	outcomeMissing outcome = "missing"
	outcomeInvalid outcome = "invalid"
	outcomeFailed  outcome = "error"
)

// result is the internal form of a lookup. Only outcomeFailed carries an
// error for the caller; invalid tokens keep their cause for logging.
type result struct {
	outcome outcome
	payload *Payload
	reason  string
	err     error
}

func valid(p *Payload) result { return result{outcome: outcomeValid, payload: p} }

func missing() result { return result{outcome: outcomeMissing} }

func invalid(reason string, cause error) result {
	return result{outcome: outcomeInvalid, reason: reason, err: cause}
}

func failed(err error) result { return result{outcome: outcomeFailed, err: err} }

// unwrap maps the result onto the public contract: payload for a valid
// session, nil for missing or invalid tokens, error for infrastructure failures.
func (r result) unwrap() (*Payload, error) {
	switch r.outcome {
	case outcomeValid:
		return r.payload, nil
	case outcomeFailed:
		return nil, r.err
	default:
		return nil, nil
	}
}

func invalidReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "expired"
	case errors.Is(err, jwt.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, jwt.ErrUnexpectedSigningMethod):
		return "unexpected_algorithm"
	default:
		return "malformed"
	}
}
