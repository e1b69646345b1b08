package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldSaleID     = "sale_id"
	FieldProduct    = "product"
	FieldSeller     = "seller"
	FieldQuantity   = "quantity"
	FieldUnitPrice  = "unit_price"
	FieldTotalValue = "total_value"
	FieldDate       = "date"
	FieldMonth      = "month"
	FieldSaleCount  = "sale_count"
	FieldLine       = "line"
	FieldPath       = "path"
	FieldFormat     = "format"
	FieldRunID      = "run_id"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentSales   = "sales"
	ComponentReport  = "report"
	ComponentIngest  = "ingest"
	ComponentExport  = "export"
	ComponentStorage = "storage"
)

// Operations defines standard operation names
const (
	OpRegister = "register"
	OpReport   = "report"
	OpIngest   = "ingest"
	OpExport   = "export"
	OpMigrate  = "migrate"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithSale adds the identifying fields of a sale
func (f LogFields) WithSale(id int64, product, seller string, totalValue string) LogFields {
	f[FieldSaleID] = id
	f[FieldProduct] = product
	f[FieldSeller] = seller
	f[FieldTotalValue] = totalValue
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
