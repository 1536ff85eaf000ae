package domain

// The status machine:
//
//	draft  -> draft | unpaid | paid
//	unpaid -> paid
//	paid   -> (terminal)
//
// There is deliberately no unpaid -> draft transition: a billed invoice
// cannot be un-billed.

// Valid reports a known status value.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusUnpaid, StatusPaid:
		return true
	default:
		return false
	}
}

// Editable reports whether the draft-editing form may be entered.
// Only draft invoices are editable; unpaid and paid amounts have been
// billed or collected and must not change silently.
func (s InvoiceStatus) Editable() bool {
	return s == StatusDraft
}

// CanTransition reports whether a saved invoice may move from one status to
// another.
func CanTransition(from, to InvoiceStatus) bool {
	switch from {
	case StatusDraft:
		return to == StatusDraft || to == StatusUnpaid || to == StatusPaid
	case StatusUnpaid:
		return to == StatusPaid
	default:
		return false
	}
}
