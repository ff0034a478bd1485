package valueobjects

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusFailed:
		return true
	default:
		return false
	}
}

func (s InvoiceStatus) IsPaid() bool {
	return s == InvoiceStatusPaid
}

func (s InvoiceStatus) IsPending() bool {
	return s == InvoiceStatusPending
}

func (s InvoiceStatus) IsFinal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusFailed
}

func (s InvoiceStatus) String() string {
	return string(s)
}
