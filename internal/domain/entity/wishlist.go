package entity

// MutationKind is the direction of a wishlist change.
type MutationKind string

const (
	MutationAdd    MutationKind = "add"
	MutationRemove MutationKind = "remove"
)

// MutationState tracks an optimistic wishlist change through its round trip.
type MutationState string

const (
	MutationPending    MutationState = "pending"
	MutationConfirmed  MutationState = "confirmed"
	MutationRolledBack MutationState = "rolled-back"
)

// WishlistMutation is one optimistic change. Seq is store-wide and strictly
// increasing in submission order; Before is the membership the change replaced.
type WishlistMutation struct {
	Seq       uint64        `json:"seq"`
	ProductID string        `json:"productId"`
	Kind      MutationKind  `json:"kind"`
	State     MutationState `json:"state"`
	Before    bool          `json:"before"`
}

// Done reports whether the mutation has resolved either way.
func (m WishlistMutation) Done() bool {
	return m.State != MutationPending
}
