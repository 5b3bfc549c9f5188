package order

import "fmt"

// NextID derives the next integer identifier from the currently stored orders.
// Returns 1 for an empty collection, otherwise the highest stored id plus one.
//
// The sequence is monotonic only with respect to what is currently stored:
// deleting the highest id frees its number for reuse by a later insert.
// That is accepted behavior for this service, not a defect.
func NextID(existing []*Order) int {
	maxID := 0
	for _, o := range existing {
		if o.ID() > maxID {
			maxID = o.ID()
		}
	}
	return maxID + 1
}

// Number formats the human-readable order number for an identifier,
// zero-padded to three digits: "PO-007" for purchase, "SO-007" for sales.
// A number is generated once at creation and never regenerated on update.
func Number(v Variant, id int) string {
	return fmt.Sprintf("%s-%03d", v.NumberPrefix(), id)
}
