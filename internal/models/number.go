package models

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Number is a uint64 that tolerates quoted values. Chain exports quote
// large integers so JS consumers don't lose precision. Both forms must be
// plain decimal integers.
type Number uint64

func (n *Number) UnmarshalJSON(data []byte) error {
	literal := strings.TrimSpace(string(data))
	if strings.HasPrefix(literal, `"`) {
		if err := json.Unmarshal(data, &literal); err != nil {
			return err
		}
		literal = strings.TrimSpace(literal)
	}
	u, err := strconv.ParseUint(literal, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", string(data), err)
	}
	*n = Number(u)
	return nil
}

func (n Number) Uint64() uint64 {
	return uint64(n)
}
