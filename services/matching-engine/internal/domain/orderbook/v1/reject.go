package orderbookv1

// RejectReason explains a business rejection. Rejections are events, never errors.
type RejectReason string

const (
	// RejectOrderNotFound is used when cancel or edit names an ouid that is not resting.
	RejectOrderNotFound RejectReason = "ORDER_NOT_FOUND"
	// RejectOperationNotMatched is used for constraints the book does not execute.
	RejectOperationNotMatched RejectReason = "OPERATION_NOT_MATCHED_MATCHC"
	// RejectOrderTypeNotMatched is used for order types incompatible with the constraint.
	RejectOrderTypeNotMatched RejectReason = "ORDER_TYPE_NOT_MATCHED_MATCHC"
)
