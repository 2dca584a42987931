package substation

type CreatedEvent struct {
	Result Substation
}

type UpdatedEvent struct {
	Result Substation
}

type BulkImportedEvent struct {
	Count int
}
