package account

import (
	"errors"
	"fmt"
	"strings"
)

// Subaccount prefixes. These are structural: the token and HTLC contracts
// always live on these children of the master account, so the prefixes are
// constants rather than configuration.
const (
	TokenPrefix = "token"
	HTLCPrefix  = "htlc"
)

// NEAR account-ID length bounds.
const (
	minIDLength = 2
	maxIDLength = 64
)

// ErrInvalidAccountID is returned when an explicit account reference is empty
// or does not follow the NEAR account-ID rules.
var ErrInvalidAccountID = errors.New("invalid account id")

// Set holds the three deployment targets derived from one master identity.
type Set struct {
	Main  string
	Token string
	HTLC  string
}

// Derive computes the account set for a master identity. It is pure: the same
// input always yields the same set.
func Derive(master string) Set {
	return Set{
		Main:  master,
		Token: TokenPrefix + "." + master,
		HTLC:  HTLCPrefix + "." + master,
	}
}

// Validate checks an account ID against the NEAR rules: 2-64 characters,
// lowercase alphanumeric segments separated by ".", where each segment may
// contain "_" or "-" but must start and end with an alphanumeric.
func Validate(id string) error {
	if len(id) < minIDLength || len(id) > maxIDLength {
		return fmt.Errorf("%w: %q must be %d-%d characters", ErrInvalidAccountID, id, minIDLength, maxIDLength)
	}
	for _, segment := range strings.Split(id, ".") {
		if !validSegment(segment) {
			return fmt.Errorf("%w: %q", ErrInvalidAccountID, id)
		}
	}
	return nil
}

func validSegment(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '_' || r == '-':
			if i == 0 || i == len(s)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
