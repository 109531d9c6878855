package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindValidation
	KindBusinessRule
)

// ErrorCode is the stable numeric code surfaced to clients. Values must never
// be renumbered.
type ErrorCode int

const (
	CodeInternal             ErrorCode = 100
	CodeCategoryNotFound     ErrorCode = 101
	CodeUserNotFound         ErrorCode = 102
	CodeUserAlreadyExists    ErrorCode = 103
	CodeInvalidFullname      ErrorCode = 104
	CodeInvalidUsername      ErrorCode = 105
	CodeInvalidCategoryName  ErrorCode = 106
	CodeInvalidOrder         ErrorCode = 107
	CodeInvalidLocalizedName ErrorCode = 108
	CodeProductNotFound      ErrorCode = 109
	CodeTransactionNotFound  ErrorCode = 110
	CodeInsufficientBalance  ErrorCode = 111
	CodeInsufficientStock    ErrorCode = 112
	CodeInvalidAmount        ErrorCode = 113
)

var codeKeys = map[ErrorCode]string{
	CodeInternal:             "INTERNAL_ERROR",
	CodeCategoryNotFound:     "CATEGORY_NOT_FOUND",
	CodeUserNotFound:         "USER_NOT_FOUND",
	CodeUserAlreadyExists:    "USER_ALREADY_EXISTS",
	CodeInvalidFullname:      "INVALID_FULLNAME",
	CodeInvalidUsername:      "INVALID_USERNAME",
	CodeInvalidCategoryName:  "INVALID_CATEGORY_NAME",
	CodeInvalidOrder:         "INVALID_ORDER",
	CodeInvalidLocalizedName: "INVALID_LOCALIZED_NAME",
	CodeProductNotFound:      "PRODUCT_NOT_FOUND",
	CodeTransactionNotFound:  "TRANSACTION_NOT_FOUND",
	CodeInsufficientBalance:  "INSUFFICIENT_BALANCE",
	CodeInsufficientStock:    "INSUFFICIENT_STOCK",
	CodeInvalidAmount:        "INVALID_AMOUNT",
}

// Key names the message template of the code.
func (c ErrorCode) Key() string {
	if key, ok := codeKeys[c]; ok {
		return key
	}

	return codeKeys[CodeInternal]
}

func (c ErrorCode) String() string {
	return c.Key()
}

// Error is the single domain failure type. Code identifies the failure,
// Args feed the localized message template and Msg is for logs only.
type Error struct {
	Code ErrorCode
	Kind ErrorKind
	Msg  string
	Args []any
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.Key()
	}

	return e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// AsError extracts the domain error from err's chain.
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}

	return nil, false
}

// Sentinels for errors.Is; match by code only.
var (
	ErrCategoryNotFound     = &Error{Code: CodeCategoryNotFound, Kind: KindNotFound}
	ErrUserNotFound         = &Error{Code: CodeUserNotFound, Kind: KindNotFound}
	ErrProductNotFound      = &Error{Code: CodeProductNotFound, Kind: KindNotFound}
	ErrTransactionNotFound  = &Error{Code: CodeTransactionNotFound, Kind: KindNotFound}
	ErrUserAlreadyExists    = &Error{Code: CodeUserAlreadyExists, Kind: KindConflict}
	ErrInvalidFullname      = &Error{Code: CodeInvalidFullname, Kind: KindValidation}
	ErrInvalidUsername      = &Error{Code: CodeInvalidUsername, Kind: KindValidation}
	ErrInvalidCategoryName  = &Error{Code: CodeInvalidCategoryName, Kind: KindValidation}
	ErrInvalidOrder         = &Error{Code: CodeInvalidOrder, Kind: KindValidation}
	ErrInvalidLocalizedName = &Error{Code: CodeInvalidLocalizedName, Kind: KindValidation}
	ErrInvalidAmount        = &Error{Code: CodeInvalidAmount, Kind: KindValidation}
	ErrInsufficientBalance  = &Error{Code: CodeInsufficientBalance, Kind: KindBusinessRule}
	ErrInsufficientStock    = &Error{Code: CodeInsufficientStock, Kind: KindBusinessRule}
)

//region NotFound

func NewCategoryNotFoundError(id int64) *Error {
	return &Error{
		Code: CodeCategoryNotFound,
		Kind: KindNotFound,
		Msg:  fmt.Sprintf("category with id %d not found", id),
		Args: []any{id},
	}
}

func NewUserNotFoundError(id int64) *Error {
	return &Error{
		Code: CodeUserNotFound,
		Kind: KindNotFound,
		Msg:  fmt.Sprintf("user with id %d not found", id),
		Args: []any{id},
	}
}

func NewProductNotFoundError(id int64) *Error {
	return &Error{
		Code: CodeProductNotFound,
		Kind: KindNotFound,
		Msg:  fmt.Sprintf("product with id %d not found", id),
		Args: []any{id},
	}
}

func NewTransactionNotFoundError(id int64) *Error {
	return &Error{
		Code: CodeTransactionNotFound,
		Kind: KindNotFound,
		Msg:  fmt.Sprintf("transaction with id %d not found", id),
		Args: []any{id},
	}
}

//endregion

//region Conflict

func NewUserAlreadyExistsError(username string) *Error {
	return &Error{
		Code: CodeUserAlreadyExists,
		Kind: KindConflict,
		Msg:  fmt.Sprintf("user %q already exists", username),
		Args: []any{username},
	}
}

//endregion

//region Validation

func NewInvalidFullnameError() *Error {
	return &Error{Code: CodeInvalidFullname, Kind: KindValidation, Msg: "fullname must not be blank"}
}

func NewInvalidUsernameError(username string) *Error {
	return &Error{
		Code: CodeInvalidUsername,
		Kind: KindValidation,
		Msg:  fmt.Sprintf("username %q must be longer than %d characters", username, MinUsernameLength),
		Args: []any{MinUsernameLength + 1},
	}
}

func NewInvalidCategoryNameError() *Error {
	return &Error{Code: CodeInvalidCategoryName, Kind: KindValidation, Msg: "category name must not be blank"}
}

func NewInvalidOrderError(order int64) *Error {
	return &Error{
		Code: CodeInvalidOrder,
		Kind: KindValidation,
		Msg:  fmt.Sprintf("order %d must not be negative", order),
		Args: []any{order},
	}
}

func NewInvalidLocalizedNameError() *Error {
	return &Error{Code: CodeInvalidLocalizedName, Kind: KindValidation, Msg: "every localized name must be filled"}
}

func NewInvalidAmountError(msg string) *Error {
	return &Error{Code: CodeInvalidAmount, Kind: KindValidation, Msg: msg}
}

//endregion

//region BusinessRule

func NewInsufficientBalanceError(userID int64) *Error {
	return &Error{
		Code: CodeInsufficientBalance,
		Kind: KindBusinessRule,
		Msg:  fmt.Sprintf("insufficient balance for user %d", userID),
		Args: []any{userID},
	}
}

func NewInsufficientStockError(productID int64, requested int64) *Error {
	return &Error{
		Code: CodeInsufficientStock,
		Kind: KindBusinessRule,
		Msg:  fmt.Sprintf("insufficient stock for product %d: %d requested", productID, requested),
		Args: []any{productID, requested},
	}
}

//endregion
