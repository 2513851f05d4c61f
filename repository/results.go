package repository

// Write acknowledgements returned to API clients verbatim. The field shape is a
// compatibility contract with the existing frontend, so it mirrors the result
// documents of the previous storage backend.

// InsertResult acknowledges a single-record insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   uint `json:"insertedId"`
}

// UpdateResult acknowledges a single-record update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult acknowledges a single-record delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
