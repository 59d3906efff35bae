package domain

// UserRole represents the access level of an application user.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleCustomer:
		return true
	}
	return false
}

// InventoryAction identifies the kind of catalog mutation recorded in the
// inventory history.
type InventoryAction string

const (
	ActionAdded       InventoryAction = "added"
	ActionUpdated     InventoryAction = "updated"
	ActionDeleted     InventoryAction = "deleted"
	ActionStockChange InventoryAction = "stock_change"
)

func (a InventoryAction) String() string { return string(a) }

func (a InventoryAction) IsValid() bool {
	switch a {
	case ActionAdded, ActionUpdated, ActionDeleted, ActionStockChange:
		return true
	}
	return false
}
