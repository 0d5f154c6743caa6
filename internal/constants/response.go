package constants

// Standard Response Field Keys
const (
	// Pagination fields
	ResponseFieldItems      = "items"
	ResponseFieldTotal      = "total"
	ResponseFieldPage       = "page"
	ResponseFieldPageSize   = "page_size"
	ResponseFieldTotalPages = "total_pages"

	// Common response fields
	ResponseFieldMessage = "message"
	ResponseFieldDetails = "details"
	ResponseFieldCode    = "code"
)

// BuildListResponse builds the paged listing envelope
func BuildListResponse(items any, total, page, pageSize, totalPages int) map[string]any {
	return map[string]any{
		ResponseFieldItems:      items,
		ResponseFieldTotal:      total,
		ResponseFieldPage:       page,
		ResponseFieldPageSize:   pageSize,
		ResponseFieldTotalPages: totalPages,
	}
}

func BuildErrorResponse(message string, details any) map[string]any {
	response := map[string]any{
		ResponseFieldMessage: message,
	}

	if details != nil {
		response[ResponseFieldDetails] = details
	}

	return response
}

// BuildCodedErrorResponse adds the domain error code to the error envelope
func BuildCodedErrorResponse(code, message string, details any) map[string]any {
	response := BuildErrorResponse(message, details)
	if code != "" {
		response[ResponseFieldCode] = code
	}
	return response
}
