// Package categorizer assigns a category label to each transaction based on
// keyword heuristics over the description text. The keyword sets mix Spanish
// and English terms so multilingual statements categorize without extra
// configuration. This is a heuristic, not a guarantee: the lists are a
// tunable table, overridable from a YAML file, and expected to need periodic
// tuning.
package categorizer

import (
	"strings"

	"fjacquet/pdf-csv/internal/logging"
	"fjacquet/pdf-csv/internal/store"
)

// Category labels. Every description maps to exactly one of these;
// CategoryOther is the fallback when no keyword matches.
const (
	CategoryFood      = "Food & Dining"
	CategoryTransport = "Transportation"
	CategoryShopping  = "Shopping"
	CategoryBills     = "Bills & Utilities"
	CategoryBanking   = "Banking & Fees"
	CategoryIncome    = "Income"
	CategoryHealth    = "Healthcare"
	CategoryOther     = "Other"
)

// Labels lists every category label in evaluation order, CategoryOther last.
var Labels = []string{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryBanking,
	CategoryIncome,
	CategoryHealth,
	CategoryOther,
}

// defaultCategories is the built-in keyword table, evaluated in order. The
// first set containing a match wins, so overlapping terms ("gas" appears
// under both transport and bills) resolve purely by position.
var defaultCategories = []store.CategoryConfig{
	{Name: CategoryFood, Keywords: []string{
		"restaurante", "restaurant", "cafe", "bar", "comida", "food",
		"mercadona", "carrefour", "supermercado", "grocery", "market",
	}},
	{Name: CategoryTransport, Keywords: []string{
		"gasolina", "gas", "taxi", "uber", "metro", "bus", "train",
		"parking", "aparcamiento", "peaje", "toll",
	}},
	{Name: CategoryShopping, Keywords: []string{
		"amazon", "ebay", "tienda", "shop", "store", "compra", "purchase",
		"zara", "h&m", "corte ingles",
	}},
	{Name: CategoryBills, Keywords: []string{
		"luz", "agua", "gas", "telefono", "internet", "electric", "water",
		"phone", "utility", "bill", "factura", "recibo",
	}},
	{Name: CategoryBanking, Keywords: []string{
		"comision", "fee", "interes", "interest", "transferencia", "transfer",
		"cajero", "atm", "banco", "bank",
	}},
	{Name: CategoryIncome, Keywords: []string{
		"nomina", "salary", "sueldo", "pago", "payment", "ingreso", "income",
	}},
	{Name: CategoryHealth, Keywords: []string{
		"farmacia", "pharmacy", "medico", "doctor", "hospital", "clinic",
		"seguro", "insurance", "salud", "health",
	}},
}

// Categorizer maps descriptions to category labels using an ordered keyword
// table. Safe for concurrent use once constructed.
type Categorizer struct {
	categories []store.CategoryConfig
	logger     logging.Logger
}

// New creates a Categorizer with the built-in keyword table.
func New(logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		categories: defaultCategories,
		logger:     logger,
	}
}

// NewFromStore creates a Categorizer whose keyword table is loaded from the
// given store, falling back to the built-in defaults when the store has no
// table or fails to load.
func NewFromStore(s *store.CategoryStore, logger logging.Logger) *Categorizer {
	c := New(logger)
	categories, err := s.LoadCategories()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load category table, using defaults")
		return c
	}
	if len(categories) > 0 {
		c.logger.Debug("Loaded category table",
			logging.Field{Key: logging.FieldCount, Value: len(categories)})
		c.categories = categories
	}
	return c
}

// Categorize returns the label of the first keyword set with a match in the
// description, or CategoryOther when none match. It is total: the result is
// always one of the known labels.
func (c *Categorizer) Categorize(description string) string {
	lower := strings.ToLower(description)

	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				c.logger.Debug("Description categorized by keyword",
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
					logging.Field{Key: "keyword", Value: keyword})
				return category.Name
			}
		}
	}
	return CategoryOther
}
