package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pdf-csv/internal/logging"
	"fjacquet/pdf-csv/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	c := New(&logging.MockLogger{})

	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{"Spanish supermarket", "SUPERMERCADO EL CORTE", CategoryFood},
		{"Restaurant", "RESTAURANTE LA PLAZA", CategoryFood},
		{"Fuel", "GASOLINERA REPSOL", CategoryTransport},
		{"Ride hailing", "UBER TRIP 1234", CategoryTransport},
		{"Online shopping", "AMAZON EU SARL", CategoryShopping},
		{"Utility bill", "RECIBO LUZ IBERDROLA", CategoryBills},
		{"Bank fee", "COMISION MANTENIMIENTO", CategoryBanking},
		{"Salary", "NOMINA EMPRESA SL", CategoryIncome},
		{"Pharmacy", "FARMACIA CENTRAL", CategoryHealth},
		{"Unknown", "XYZZY 123", CategoryOther},
		{"Empty", "", CategoryOther},
		{"Case insensitive", "supermercado dia", CategoryFood},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Categorize(tc.description))
		})
	}
}

// Overlapping keywords resolve by table position: "gas" sits under both
// transport and bills, and transport comes first.
func TestCategorizePriority(t *testing.T) {
	c := New(&logging.MockLogger{})
	assert.Equal(t, CategoryTransport, c.Categorize("FACTURA DE GAS NATURAL"))
}

func TestCategorizeIsTotal(t *testing.T) {
	c := New(&logging.MockLogger{})
	known := make(map[string]bool, len(Labels))
	for _, label := range Labels {
		known[label] = true
	}

	for _, description := range []string{
		"", "random text", "1234567890", "ñ€$", "COMPRA GENERICA",
	} {
		assert.True(t, known[c.Categorize(description)],
			"category for %q must be a known label", description)
	}
}

func TestNewFromStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	yaml := `categories:
  - name: Groceries
    keywords: [mercadona, lidl]
  - name: Other
    keywords: []
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0600))

	c := NewFromStore(store.NewCategoryStore(path), &logging.MockLogger{})
	assert.Equal(t, "Groceries", c.Categorize("COMPRA LIDL"))
	assert.Equal(t, CategoryOther, c.Categorize("RESTAURANTE"))
}

func TestNewFromStoreMissingFileKeepsDefaults(t *testing.T) {
	c := NewFromStore(store.NewCategoryStore(""), &logging.MockLogger{})
	assert.Equal(t, CategoryFood, c.Categorize("RESTAURANTE"))
}
