package collcache

// Resolver extracts durable identity and concrete runtime type from member
// elements. A to-many association target may be polymorphic, so the write
// path never assumes the declared target type: each member's runtime type
// picks its entity region and hydrator.
type Resolver[E any] interface {
	// IdentityOf returns the element's durable identity token.
	IdentityOf(element E) (Identifier, error)

	// RuntimeTypeOf returns the element's concrete root type name.
	RuntimeTypeOf(element E) (string, error)
}

// ResolverFuncs adapts plain functions to Resolver.
type ResolverFuncs[E any] struct {
	Identity func(E) (Identifier, error)
	Type     func(E) (string, error)
}

var _ Resolver[struct{}] = ResolverFuncs[struct{}]{}

func (r ResolverFuncs[E]) IdentityOf(element E) (Identifier, error) { return r.Identity(element) }
func (r ResolverFuncs[E]) RuntimeTypeOf(element E) (string, error)  { return r.Type(element) }

// Metadata answers static schema questions about associations and owner
// types. Order preservation is a property of the association's declaration;
// the persister consults it once at construction, never per call.
type Metadata interface {
	// IsOrderPreserving reports whether the association's stored
	// representation must retain a caller-meaningful sequence or explicit
	// index, as opposed to an unordered member set.
	IsOrderPreserving(ownerType, association string) bool

	// RootType returns the root entity type name for an owner type, so cache
	// keys built from subtypes of one hierarchy coincide.
	RootType(ownerType string) string
}

// StaticMetadata is a Metadata for a fixed schema snapshot.
type StaticMetadata struct {
	// Ordered maps "ownerType.association" to order preservation.
	Ordered map[string]bool

	// Roots maps an owner type to its root type; missing entries resolve to
	// the owner type itself.
	Roots map[string]string
}

var _ Metadata = StaticMetadata{}

func (m StaticMetadata) IsOrderPreserving(ownerType, association string) bool {
	return m.Ordered[ownerType+"."+association]
}

func (m StaticMetadata) RootType(ownerType string) string {
	if root, ok := m.Roots[ownerType]; ok {
		return root
	}
	return ownerType
}
