package validator

import (
	"regexp"

	validators "github.com/go-playground/validator/v10"
)

// xpathPattern matches prefixed document property names such as dc:title or file:content
var xpathPattern = regexp.MustCompile(`^[A-Za-z][\w-]*:[\w-]+(/[\w-]+)*$`)

// versionIncrements are the values accepted by Document.CreateVersion
var versionIncrements = map[string]struct{}{
	"None":  {},
	"Minor": {},
	"Major": {},
}

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func - registers the repository specific tags:
// xpath (prefixed property name) and version_increment (None, Minor or Major)
func New() Validator {
	v := validators.New()
	_ = v.RegisterValidation("xpath", validateXPath)
	_ = v.RegisterValidation("version_increment", validateVersionIncrement)
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {

	return v.validator.Struct(inf)
}

func validateXPath(fl validators.FieldLevel) bool {
	return xpathPattern.MatchString(fl.Field().String())
}

func validateVersionIncrement(fl validators.FieldLevel) bool {
	_, ok := versionIncrements[fl.Field().String()]
	return ok
}
