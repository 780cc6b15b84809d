package validation

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors is a field -> message-list report, keyed by the json field name.
type Errors map[string][]string

// Add appends a message to a field's error list
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Merge appends all messages from another report
func (e Errors) Merge(other Errors) {
	for field, messages := range other {
		e[field] = append(e[field], messages...)
	}
}

// Any reports whether the report contains any error
func (e Errors) Any() bool {
	return len(e) > 0
}

// DomainCheckFunc decides whether an email domain is deliverable
type DomainCheckFunc func(domain string) bool

// Option configures a Validator
type Option func(*Validator)

// WithDomainCheck overrides the DNS deliverability check. Tests use this to
// avoid network lookups.
func WithDomainCheck(fn DomainCheckFunc) Option {
	return func(v *Validator) {
		v.domainCheck = fn
	}
}

// Validator checks request structs against their rules and reports failures
// as field -> message-list maps. It never mutates the checked value, and
// invalid input is a reported outcome, not an error condition.
type Validator struct {
	validate    *validator.Validate
	domainCheck DomainCheckFunc
}

// New creates a Validator with the custom rules registered
func New(opts ...Option) *Validator {
	v := &Validator{
		validate:    validator.New(),
		domainCheck: lookupDomain,
	}

	for _, opt := range opts {
		opt(v)
	}

	// Report fields under their json names
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// dns: the address's domain must resolve (MX, falling back to host)
	_ = v.validate.RegisterValidation("dns", func(fl validator.FieldLevel) bool {
		at := strings.LastIndex(fl.Field().String(), "@")
		if at < 0 || at == len(fl.Field().String())-1 {
			return false
		}
		return v.domainCheck(fl.Field().String()[at+1:])
	})

	return v
}

// Check validates a request struct and returns the field error report,
// or nil when the input is valid.
func (v *Validator) Check(s interface{}) Errors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	report := Errors{}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			report.Add(fe.Field(), messageFor(fe.Field(), fe.Tag(), fe.Param()))
		}
		return report
	}

	report.Add("input", "The given data was invalid.")
	return report
}

// Var validates a single value against a rule string, reporting messages
// under the given field name. Used for the update-path checks that only
// apply when a field's value changed.
func (v *Validator) Var(field string, value interface{}, rules string) []string {
	err := v.validate.Var(value, rules)
	if err == nil {
		return nil
	}

	var messages []string
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			messages = append(messages, messageFor(field, fe.Tag(), fe.Param()))
		}
		return messages
	}

	return []string{messageFor(field, "", "")}
}

// UniqueMessage is the report entry for a value already taken by another record
func UniqueMessage(field string) string {
	return fmt.Sprintf("The %s has already been taken.", humanize(field))
}

// ExistsMessage is the report entry for a reference to a missing record
func ExistsMessage(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", humanize(field))
}

// RequiredMessage is the report entry for a missing field
func RequiredMessage(field string) string {
	return fmt.Sprintf("The %s field is required.", humanize(field))
}

// allowed logo types; matches the upload rules for company logos
var imageExtensions = []string{".png", ".jpg", ".jpeg"}

// CheckImage validates an uploaded image file header: presence (when
// required), png/jpg/jpeg type, and a size ceiling in kilobytes. A nil
// header with required=false reports nothing.
func CheckImage(field string, fh *multipart.FileHeader, required bool, maxKB int64) []string {
	if fh == nil {
		if required {
			return []string{RequiredMessage(field)}
		}
		return nil
	}

	var messages []string

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	allowed := false
	for _, e := range imageExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		messages = append(messages,
			fmt.Sprintf("The %s must be an image.", humanize(field)),
			fmt.Sprintf("The %s must be a file of type: png, jpg, jpeg.", humanize(field)),
		)
	}

	if fh.Size > maxKB*1024 {
		messages = append(messages,
			fmt.Sprintf("The %s must not be greater than %d kilobytes.", humanize(field), maxKB))
	}

	return messages
}

func messageFor(field, tag, param string) string {
	name := humanize(field)
	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email", "dns":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "max":
		return fmt.Sprintf("The %s must not be greater than %s characters.", name, param)
	case "url":
		return fmt.Sprintf("The %s format is invalid.", name)
	case "numeric", "number":
		return fmt.Sprintf("The %s must be an integer.", name)
	default:
		return fmt.Sprintf("The %s is invalid.", name)
	}
}

func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// lookupDomain is the default deliverability check: an MX record, or at
// least a resolvable host.
func lookupDomain(domain string) bool {
	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	addrs, err := net.LookupHost(domain)
	return err == nil && len(addrs) > 0
}
