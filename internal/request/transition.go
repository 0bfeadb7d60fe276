package request

// transitions maps (current status, requested status) to the roles allowed
// to make that move. A pair absent from the table is denied; terminal
// statuses (rejected, cancelled, completed) have no outgoing entries.
//
// Forward movement through pending/negotiating belongs to the vendor; the
// client answers an offer by rejecting it or by paying the finalization fee,
// and is the only side that can abandon its own request early. Acceptance of
// a standing offer is absent here on purpose: that move happens only through
// payment confirmation, which writes the status directly. Once both sides
// are committed either party may start, complete or cancel the engagement.
var transitions = map[Status]map[Status][]Role{
	StatusPending: {
		StatusNegotiating: {RoleVendor},
		StatusOfferSent:   {RoleVendor},
		StatusAccepted:    {RoleVendor},
		StatusRejected:    {RoleVendor},
		StatusCancelled:   {RoleClient},
	},
	StatusNegotiating: {
		StatusOfferSent: {RoleVendor},
		StatusRejected:  {RoleVendor},
		StatusCancelled: {RoleClient},
	},
	StatusOfferSent: {
		StatusRejected:  {RoleClient},
		StatusCancelled: {RoleClient},
		// Offer withdrawal returns to negotiating, never to pending.
		StatusNegotiating: {RoleVendor},
	},
	StatusAccepted: {
		StatusInProgress: {RoleClient, RoleVendor},
		StatusCancelled:  {RoleClient, RoleVendor},
	},
	StatusInProgress: {
		StatusCompleted: {RoleClient, RoleVendor},
		StatusCancelled: {RoleClient, RoleVendor},
	},
}

// CanTransition reports whether the given role may move a request from one
// status to another. Unknown pairs fail closed.
func CanTransition(from, to Status, role Role) bool {
	for _, allowed := range transitions[from][to] {
		if allowed == role {
			return true
		}
	}

	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}
