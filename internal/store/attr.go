package store

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute builders.  Optional strings are stored as empty strings and
// optional numbers as NULL markers rather than being omitted, so a later
// Update can clear a field instead of leaving it dangling.

// S builds a string attribute.
func S(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

// N builds a number attribute from an int.
func N(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}

// F builds a number attribute from a float.
func F(v float64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

// Bool builds a boolean attribute.
func Bool(v bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: v}
}

// NullableF builds a number attribute, or a NULL marker when the pointer is
// nil.
func NullableF(v *float64) types.AttributeValue {
	if v == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return F(*v)
}

// Attribute readers.  Missing or mistyped attributes decode to zero values
// so partially-written or legacy items still decode without error.

// GetS reads a string attribute, defaulting to "".
func GetS(item Item, name string) string {
	if av, ok := item[name].(*types.AttributeValueMemberS); ok {
		return av.Value
	}
	return ""
}

// GetN reads a number attribute as an int, defaulting to 0.
func GetN(item Item, name string) int {
	if av, ok := item[name].(*types.AttributeValueMemberN); ok {
		if n, err := strconv.Atoi(av.Value); err == nil {
			return n
		}
	}
	return 0
}

// GetF reads a number attribute as a float, defaulting to 0.
func GetF(item Item, name string) float64 {
	if av, ok := item[name].(*types.AttributeValueMemberN); ok {
		if f, err := strconv.ParseFloat(av.Value, 64); err == nil {
			return f
		}
	}
	return 0
}

// GetBool reads a boolean attribute, defaulting to false.
func GetBool(item Item, name string) bool {
	if av, ok := item[name].(*types.AttributeValueMemberBOOL); ok {
		return av.Value
	}
	return false
}

// GetNullableF reads a number attribute, returning nil for a NULL marker or
// a missing attribute.
func GetNullableF(item Item, name string) *float64 {
	if av, ok := item[name].(*types.AttributeValueMemberN); ok {
		if f, err := strconv.ParseFloat(av.Value, 64); err == nil {
			return &f
		}
	}
	return nil
}
