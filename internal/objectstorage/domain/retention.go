package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/errors"
	customValidation "github.com/allisson/oscli/internal/validation"
)

// Supported retention time units.
const (
	TimeUnitDays  = string(objectstorage.DurationTimeUnitDays)
	TimeUnitYears = string(objectstorage.DurationTimeUnitYears)
)

// datetimeLayouts are tried in order when parsing --time-rule-locked.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseDatetime parses the datetime formats accepted on the command line.
// Values without a zone are taken as UTC.
func ParseDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidDatetime, "%q", value)
}

// RetentionRuleInput carries the options shared by retention-rule create and update.
// Numeric and time values are kept as text until Validate has accepted them.
type RetentionRuleInput struct {
	Namespace       string
	Bucket          string
	RetentionRuleID string
	DisplayName     string
	TimeAmount      string
	TimeUnit        string
	TimeRuleLocked  string
}

// Validate checks the option values first (unit choice, integer amount, lock
// datetime) and then the time-amount/time-unit pairing.
func (r *RetentionRuleInput) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Bucket, validation.Required, customValidation.NotBlank),
		validation.Field(&r.TimeUnit, customValidation.OneOfFold(TimeUnitDays, TimeUnitYears)),
		validation.Field(&r.TimeAmount, validation.By(positiveInteger)),
	)
	if err != nil {
		return customValidation.WrapValidationError(err)
	}

	if r.TimeRuleLocked != "" {
		if _, err := ParseDatetime(r.TimeRuleLocked); err != nil {
			return err
		}
	}

	if r.TimeAmount != "" && r.TimeUnit == "" {
		return ErrMissingTimeUnit
	}
	return nil
}

// ValidateUpdate is Validate plus the rule id required by updates.
func (r *RetentionRuleInput) ValidateUpdate() error {
	if strings.TrimSpace(r.RetentionRuleID) == "" {
		return errors.Wrap(errors.ErrUsage, "Missing option(s) --retention-rule-id")
	}
	return r.Validate()
}

// Duration converts the amount and unit to the SDK model. A rule without an
// amount is an indefinite retention and yields nil.
func (r *RetentionRuleInput) Duration() (*objectstorage.Duration, error) {
	if r.TimeAmount == "" {
		return nil, nil
	}
	amount, err := strconv.ParseInt(strings.TrimSpace(r.TimeAmount), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUsage, "invalid --time-amount %q", r.TimeAmount)
	}
	unit, ok := objectstorage.GetMappingDurationTimeUnitEnum(strings.ToUpper(r.TimeUnit))
	if !ok {
		return nil, errors.Wrapf(errors.ErrUsage, "invalid choice: %s", r.TimeUnit)
	}
	return &objectstorage.Duration{
		TimeAmount: common.Int64(amount),
		TimeUnit:   unit,
	}, nil
}

// LockTime returns the parsed --time-rule-locked value, or nil when unset.
func (r *RetentionRuleInput) LockTime() (*common.SDKTime, error) {
	if r.TimeRuleLocked == "" {
		return nil, nil
	}
	t, err := ParseDatetime(r.TimeRuleLocked)
	if err != nil {
		return nil, err
	}
	return &common.SDKTime{Time: t}, nil
}

func positiveInteger(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return validation.NewError("validation_integer", fmt.Sprintf("%s is not a valid integer", s))
	}
	if n <= 0 {
		return validation.NewError("validation_positive", "must be greater than zero")
	}
	return nil
}
