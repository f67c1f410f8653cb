package providers

import (
	"errors"

	"forumcfg/internal/models"
	"forumcfg/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	v.StopOnError = false
	v.AddValidator("accountID", isAccountID)
	v.AddMessages(map[string]string{
		"accountID": "{field} must be a 32 byte hex account id",
	})

	if v.Validate() {
		return nil
	}
	return errors.New(v.Errors.String())
}

func isAccountID(val interface{}) bool {
	s, ok := val.(string)
	if !ok {
		return false
	}
	_, err := models.ParseAccountID(s)
	return err == nil
}
