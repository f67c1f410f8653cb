package models

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

const AccountIDLength = 32

var ErrInvalidAccount = errors.New("invalid account id")

// AccountID is the raw 32-byte account identifier used by the legacy chain.
// Being an array it is comparable and can key a map directly.
type AccountID [AccountIDLength]byte

func ParseAccountID(s string) (AccountID, error) {
	var acc AccountID
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(raw) != AccountIDLength*2 {
		return acc, fmt.Errorf("%w: expected %d hex chars, got %d", ErrInvalidAccount, AccountIDLength*2, len(raw))
	}
	if _, err := hex.Decode(acc[:], []byte(raw)); err != nil {
		return acc, fmt.Errorf("%w: %s", ErrInvalidAccount, err)
	}
	return acc, nil
}

func (a AccountID) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

func (a AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a hex string (0x prefix optional) or an array of 32 bytes.
func (a *AccountID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var raw []int
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAccount, err)
		}
		if len(raw) != AccountIDLength {
			return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAccount, AccountIDLength, len(raw))
		}
		for i, b := range raw {
			if b < 0 || b > 0xff {
				return fmt.Errorf("%w: byte %d out of range: %d", ErrInvalidAccount, i, b)
			}
			a[i] = byte(b)
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAccount, err)
	}
	acc, err := ParseAccountID(s)
	if err != nil {
		return err
	}
	*a = acc
	return nil
}
