package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrInvalidUserID = errors.New("invalid user id")

// UserID is the numeric account id issued by the content service, kept in
// decimal text form since it does not fit in 64 bits.
type UserID string

func ParseUserID(value string) (UserID, error) {
	trimmed := strings.TrimSpace(value)
	number, ok := new(big.Int).SetString(trimmed, 10)
	if !ok || number.Sign() < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidUserID, value)
	}
	return UserID(number.String()), nil
}

func (id UserID) String() string {
	return string(id)
}

func (id UserID) IsZero() bool {
	return id == ""
}

type User struct {
	ID       UserID
	Username string
}
