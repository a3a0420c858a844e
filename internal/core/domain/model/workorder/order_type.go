package workorder

import (
	"fmt"

	"fleetops/internal/pkg/errs"
)

// OrderType classifies the field work a work order dispatches.
// The type is immutable once the order is created and determines both the
// device-state validation rules and whether the order carries detail lines.
type OrderType int

const (
	// TypeUnknown represents an invalid or undefined order type.
	// This value (0) helps catch uninitialized OrderType values.
	TypeUnknown OrderType = iota

	// TypeDeploy places a machine in the field. Only valid against a
	// device that is not running yet.
	TypeDeploy

	// TypeRepair dispatches maintenance to a running machine.
	TypeRepair

	// TypeSupply restocks a running machine's channels. The only type
	// that owns detail lines.
	TypeSupply

	// TypeRevoke withdraws a running machine from the field.
	TypeRevoke
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		TypeUnknown: "Unknown",
		TypeDeploy:  "Deploy",
		TypeRepair:  "Repair",
		TypeSupply:  "Supply",
		TypeRevoke:  "Revoke",
	}
}

func getValidOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		TypeDeploy: "Deploy",
		TypeRepair: "Repair",
		TypeSupply: "Supply",
		TypeRevoke: "Revoke",
	}
}

// ParseOrderType converts a string such as "Supply" into an OrderType.
// Returns an error for unrecognized names.
func ParseOrderType(s string) (OrderType, error) {
	for t, str := range getValidOrderTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks that the OrderType value is one of the defined types.
func (t OrderType) Validate() error {
	if _, ok := getValidOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// RequiresDetails reports whether orders of this type must carry detail
// lines. Only supply orders restock channels, so only they own details.
func (t OrderType) RequiresDetails() bool {
	return t == TypeSupply
}
