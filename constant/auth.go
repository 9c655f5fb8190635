package constant

type contextKey string

const SessionKey contextKey = "operator_session"

// Permission strings checked by the authorization layer.
const (
	PermAssignmentRead   = "warehouse:item-assignment:read"
	PermAssignmentCreate = "warehouse:item-assignment:create"
	PermAssignmentUpdate = "warehouse:item-assignment:update"
	PermAssignmentDelete = "warehouse:item-assignment:delete"
	PermLocationRead     = "warehouse:location:read"
	PermLocationCreate   = "warehouse:location:create"
	PermLocationUpdate   = "warehouse:location:update"
	PermLeaseAcquire     = "warehouse:location-lease:acquire"
	PermCatalogRead      = "core:catalog:read"
)
