package handlers

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Listings *ListingHandler
	Reviews  *ReviewsHandler
	Leads    *LeadsHandler
	Articles *ArticlesHandler
	Storage  *StorageHandler
}
