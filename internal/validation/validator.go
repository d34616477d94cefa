package validation

import (
	"regexp"
	"strings"
	"time"

	"school-fee-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	// order ids are issued by schools: printable, no whitespace
	orderIDPattern  = regexp.MustCompile(`^[!-~]{1,64}$`)
	schoolIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)
)

// RegisterRules adds the dashboard's custom tags to v
func RegisterRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"order_id":           validateOrderID,
		"school_id":          validateSchoolID,
		"transaction_status": validateTransactionStatus,
		"iso_date":           validateISODate,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// New returns a validator with the dashboard rules registered
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for empty tags or nil funcs
	_ = RegisterRules(v)
	return v
}

func validateOrderID(fl validator.FieldLevel) bool {
	return orderIDPattern.MatchString(fl.Field().String())
}

func validateSchoolID(fl validator.FieldLevel) bool {
	return schoolIDPattern.MatchString(fl.Field().String())
}

// validateTransactionStatus accepts one status or a comma-separated list
func validateTransactionStatus(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}
	for _, s := range strings.Split(raw, ",") {
		if !models.IsValidTransactionStatus(strings.TrimSpace(s)) {
			return false
		}
	}
	return true
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}
