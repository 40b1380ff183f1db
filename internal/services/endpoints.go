package services

// customer endpoints
const (
	customerCreatePath              = "/api/customers/create"
	customerUpdatePath              = "/api/customers/update"
	customerUpdateStatusPath        = "/api/customers/updateStatus"
	customerSearchPath              = "/api/customers/search"
	customerSearchByNamePath        = "/api/customers/searchByName"
	customerGetAllPath              = "/api/customers/getAll"
	customerGetByIDPath             = "/api/customers/getById"
	customerGetByEmailPath          = "/api/customers/getByEmail"
	customerGetByPhonePath          = "/api/customers/getByPhone"
	customerGetByStatusPath         = "/api/customers/getByStatus"
	customerGetByBirthDateRangePath = "/api/customers/getByBirthDateRange"
	customerStatusStatisticsPath    = "/api/customers/getStatusStatistics"
	customerGetRecentPath           = "/api/customers/getRecent"
)

// product endpoints
const (
	productCreatePath          = "/api/products/create"
	productUpdatePath          = "/api/products/update"
	productUpdateStatusPath    = "/api/products/updateStatus"
	productSearchPath          = "/api/products/search"
	productSearchByNamePath    = "/api/products/searchByName"
	productGetAllPath          = "/api/products/getAll"
	productGetByIDPath         = "/api/products/getById"
	productGetByStatusPath     = "/api/products/getByStatus"
	productGetByTypePath       = "/api/products/getByType"
	productGetByPriceRangePath = "/api/products/getByPriceRange"
	productStatisticsPath      = "/api/products/getStatistics"
)

// stock endpoints
const (
	stockInboundPath            = "/api/stocks/inbound"
	stockOutboundPath           = "/api/stocks/outbound"
	stockQueryPath              = "/api/stocks/query"
	stockByProductPath          = "/api/stocks/by-id"
	stockAvailabilityPath       = "/api/stocks/availability"
	stockMovementsPath          = "/api/stocks/getMovements"
	stockMovementsByProductPath = "/api/stocks/getMovementsByProduct"
)
