package service

// Authorizer is the capability gate consulted before each guarded action.
// Capabilities are resource-and-verb names such as "products-post" or
// "providers-put-delete". Implementations must deny by default.
type Authorizer interface {
	// Allows reports whether the given role holds the named capability.
	Allows(capability, role string) bool
}
