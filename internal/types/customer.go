package types

// =============================================================================
// CUSTOMER ENUMS
// =============================================================================

type CustomerGender string

const (
	GenderMale   CustomerGender = "MALE"
	GenderFemale CustomerGender = "FEMALE"
	GenderOther  CustomerGender = "OTHER"
)

type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "ACTIVE"
	CustomerSuspended CustomerStatus = "SUSPENDED"
	CustomerBlacklist CustomerStatus = "BLACKLIST"
)

// =============================================================================
// CUSTOMER
// =============================================================================

type Customer struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Nick        string         `json:"nick,omitempty"`
	Gender      CustomerGender `json:"gender"`
	BirthDate   string         `json:"birthDate,omitempty"`
	FbAccount   string         `json:"fbAccount,omitempty"`
	LineAccount string         `json:"lineAccount,omitempty"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Note        string         `json:"note,omitempty"`
	Status      CustomerStatus `json:"status"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

// =============================================================================
// CUSTOMER REQUESTS
// =============================================================================

// CustomerCreateRequest - birthDate is YYYY-MM-DD
type CustomerCreateRequest struct {
	Name        string         `json:"name" validate:"required"`
	Nick        string         `json:"nick,omitempty"`
	Gender      CustomerGender `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	BirthDate   string         `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FbAccount   string         `json:"fbAccount,omitempty"`
	LineAccount string         `json:"lineAccount,omitempty"`
	Email       string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string         `json:"phone" validate:"required"`
	Address     string         `json:"address" validate:"required"`
	Note        string         `json:"note,omitempty"`
}

type CustomerUpdateRequest struct {
	ID          int64          `json:"id" validate:"required,gt=0"`
	Name        string         `json:"name" validate:"required"`
	Nick        string         `json:"nick,omitempty"`
	Gender      CustomerGender `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	BirthDate   string         `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FbAccount   string         `json:"fbAccount,omitempty"`
	LineAccount string         `json:"lineAccount,omitempty"`
	Email       string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string         `json:"phone" validate:"required"`
	Address     string         `json:"address" validate:"required"`
	Note        string         `json:"note,omitempty"`
}

type CustomerStatusUpdateRequest struct {
	ID     int64          `json:"id" validate:"required,gt=0"`
	Status CustomerStatus `json:"status" validate:"required,oneof=ACTIVE SUSPENDED BLACKLIST"`
}

type CustomerSearchRequest struct {
	PageRequest
	Name   string         `json:"name,omitempty"`
	Phone  string         `json:"phone,omitempty"`
	Email  string         `json:"email,omitempty"`
	Status CustomerStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE SUSPENDED BLACKLIST"`
}

type CustomerSearchStatusRequest struct {
	PageRequest
	Status CustomerStatus `json:"status" validate:"required,oneof=ACTIVE SUSPENDED BLACKLIST"`
}

type CustomerNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type CustomerPhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type CustomerEmailRequest struct {
	Email string `json:"email" validate:"required"`
}

type CustomerSearchIDRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// CustomerBirthDateRangeRequest - dates are YYYY-MM-DD
type CustomerBirthDateRangeRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// CustomerStatusStatistics maps a status to a count (the backend may add other keys)
type CustomerStatusStatistics map[string]any
