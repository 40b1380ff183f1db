package apperrors

// ErrorCode is the errorCode value carried by the ERP backend envelope.
type ErrorCode string

const (
	ErrCodeDuplicateEmail    ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeDuplicatePhone    ErrorCode = "DUPLICATE_PHONE"
	ErrCodeForbidden         ErrorCode = "FORBIDDEN"
	ErrCodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	ErrCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeTimeout           ErrorCode = "TIMEOUT"
	ErrCodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	ErrCodeValidationError   ErrorCode = "VALIDATION_ERROR"
)

// codes sent by the backend services
const (
	ErrCodeInvalidArgument       ErrorCode = "INVALID_ARGUMENT"
	ErrCodeUnsupportedAction     ErrorCode = "UNSUPPORTED_ACTION"
	ErrCodeUnexpectedError       ErrorCode = "UNEXPECTED_ERROR"
	ErrCodeSearchError           ErrorCode = "SEARCH_ERROR"
	ErrCodeItemNotFound          ErrorCode = "ITEM_NOT_FOUND"
	ErrCodeStockNotFound         ErrorCode = "STOCK_NOT_FOUND"
	ErrCodeCustomerNotFound      ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeCustomerAlreadyExists ErrorCode = "CUSTOMER_ALREADY_EXISTS"
	ErrCodePhoneAlreadyExists    ErrorCode = "PHONE_ALREADY_EXISTS"
	ErrCodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	ErrCodeInvalidPhoneFormat    ErrorCode = "INVALID_PHONE_FORMAT"
	ErrCodeInvalidAddressFormat  ErrorCode = "INVALID_ADDRESS_FORMAT"
)

func (c ErrorCode) String() string {
	return string(c)
}
