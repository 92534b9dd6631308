package commands

// InvoiceItemCommand is one requested line of a new invoice
type InvoiceItemCommand struct {
	ProductID int
	Qty       int
}

// CreateInvoiceCommand represents a command to create a new invoice
type CreateInvoiceCommand struct {
	CustomerID int
	Items      []InvoiceItemCommand
}
