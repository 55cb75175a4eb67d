// Package handle maps integer handles to host-side values crossing the guest
// boundary.
//
// Guests never see host pointers; they see opaque handles allocated from a
// Table. Handles are typed so a guest cannot pass, say, a builder handle
// where an event handle is expected:
//
//	const TypeBuilder = 1
//
//	table := handle.NewTable()
//	h := table.Insert(TypeBuilder, builder)
//
//	value, ok := table.GetTyped(h, TypeBuilder)
//
// Handle 0 is reserved and always invalid. Freed handles are recycled.
package handle
