package pkg

import (
	"regexp"
	"strings"
)

const (
	minAccountIDLength = 2
	maxAccountIDLength = 64

	minLabelLength = 2
	maxLabelLength = 64
)

var (
	implicitAccountRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)
	// a single character label matches this pattern, the length floor is checked separately
	accountLabelRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9_-]*[a-z0-9])?$`)
)

// AccountKind tells how an account id was recognised.
type AccountKind int

const (
	AccountKindInvalid AccountKind = iota
	// AccountKindImplicit is a 64 char lowercase hex id derived from a public key
	AccountKindImplicit
	// AccountKindNamed is a dot separated list of labels, e.g. "vault-0.factory.sudostake.near"
	AccountKindNamed
)

func (k AccountKind) String() string {
	switch k {
	case AccountKindImplicit:
		return "implicit"
	case AccountKindNamed:
		return "named"
	default:
		return "invalid"
	}
}

// ParseAccountID classifies id as implicit or named account.
// It never fails, AccountKindInvalid is returned for anything that violates the grammar.
func ParseAccountID(id string) AccountKind {
	if len(id) < minAccountIDLength || len(id) > maxAccountIDLength {
		return AccountKindInvalid
	}

	if isImplicitAccountID(id) {
		return AccountKindImplicit
	}

	if isNamedAccountID(id) {
		return AccountKindNamed
	}

	return AccountKindInvalid
}

// IsValidAccountID reports whether id can be used as owner, lender or validator account.
func IsValidAccountID(id string) bool {
	return ParseAccountID(id) != AccountKindInvalid
}

func isImplicitAccountID(id string) bool {
	return implicitAccountRegex.MatchString(id)
}

func isNamedAccountID(id string) bool {
	labels := strings.Split(id, ".")
	if len(labels) == 0 {
		return false
	}

	for _, label := range labels {
		if len(label) < minLabelLength || len(label) > maxLabelLength {
			return false
		}
		if !accountLabelRegex.MatchString(label) {
			return false
		}
	}

	return true
}
