package engine

import "github.com/sievekit/sieve/internal/document"

// rule validates instance against one keyword's schema value. parent is the
// enclosing schema object: a few keywords (additionalProperties,
// additionalItems) depend on their siblings and need it; the rest ignore it.
//
// Rules are pure functions with no shared mutable state; any subset may run
// in any order, and concurrent Validate calls on independent documents are
// safe.
type rule func(instance, schema document.Value, parent *document.Object) *ValidationError

// keywordRules is the closed dispatch table from keyword name to rule.
// Built once at process start and never mutated afterwards; extending the
// engine means adding an entry here and nothing else.
//
// Populated in init rather than at the declaration: the rules recurse back
// into the table through descend/runValidators, and a declaration-site
// initializer would form an initialization cycle.
var keywordRules map[string]rule

func init() {
	keywordRules = map[string]rule{
		"type":                 validateType,
		"const":                validateConst,
		"enum":                 validateEnum,
		"minimum":              validateMinimum,
		"maximum":              validateMaximum,
		"exclusiveMinimum":     validateExclusiveMinimum,
		"exclusiveMaximum":     validateExclusiveMaximum,
		"multipleOf":           validateMultipleOf,
		"minLength":            validateMinLength,
		"maxLength":            validateMaxLength,
		"minItems":             validateMinItems,
		"maxItems":             validateMaxItems,
		"uniqueItems":          validateUniqueItems,
		"items":                validateItems,
		"additionalItems":      validateAdditionalItems,
		"contains":             validateContains,
		"minProperties":        validateMinProperties,
		"maxProperties":        validateMaxProperties,
		"required":             validateRequired,
		"properties":           validateProperties,
		"patternProperties":    validatePatternProperties,
		"additionalProperties": validateAdditionalProperties,
		"propertyNames":        validatePropertyNames,
		"dependencies":         validateDependencies,
		"allOf":                validateAllOf,
		"anyOf":                validateAnyOf,
		"oneOf":                validateOneOf,
		"not":                  validateNot,
	}
}
