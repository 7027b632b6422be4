package repo

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value violates unique constraint")
	ErrInvalidStockChange    = errors.New("stock adjustment would make stock negative")
	ErrNoProductInStock      = errors.New("no product with available stock")
)
