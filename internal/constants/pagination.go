package constants

// Query Parameters accepted by the persons listing
const (
	QueryParamPage     = "page"
	QueryParamPageSize = "page_size"
	QueryParamSearch   = "query"
	QueryParamStatus   = "status"
	QueryParamSort     = "sort"
	QueryParamOrder    = "order"
)

// Default query values
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSearch   = ""
	DefaultStatus   = StatusAll
	DefaultSort     = SortCreatedAt
	DefaultOrder    = OrderDesc
)

// Page size limits enforced at the HTTP boundary
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// StatusAll disables status filtering
const StatusAll = "all"

// Sortable fields
const (
	SortCreatedAt = "createdAt"
	SortAge       = "age"
	SortVisits    = "visits"
	SortProgress  = "progress"
)

// Sort Orders
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)
