package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/validation"
)

func TestParseExpenseParams_Empty(t *testing.T) {
	criteria, err := ParseExpenseParams(ExpenseParams{})
	require.NoError(t, err)
	assert.True(t, criteria.IsEmpty())
}

func TestParseExpenseParams_AllSet(t *testing.T) {
	criteria, err := ParseExpenseParams(ExpenseParams{
		Date:     "10-01-2024",
		DateFrom: "2024-02-01",
		DateTo:   "01-03-2024",
		Category: "Food",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *criteria.Date)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *criteria.DateFrom)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *criteria.DateTo)
	assert.Equal(t, "Food", *criteria.CategoryName)
	assert.False(t, criteria.IsEmpty())
}

func TestParseExpenseParams_EquivalentDateFormats(t *testing.T) {
	iso, err := ParseExpenseParams(ExpenseParams{Date: "2024-01-10"})
	require.NoError(t, err)
	dmy, err := ParseExpenseParams(ExpenseParams{Date: "10-01-2024"})
	require.NoError(t, err)

	assert.Equal(t, iso, dmy)
}

func TestParseExpenseParams_FromAfterToIsNotAnError(t *testing.T) {
	_, err := ParseExpenseParams(ExpenseParams{DateFrom: "2024-03-01", DateTo: "2024-02-01"})
	assert.NoError(t, err)
}

func TestParseExpenseParams_BlankCategoryIgnored(t *testing.T) {
	criteria, err := ParseExpenseParams(ExpenseParams{Category: "   "})
	require.NoError(t, err)
	assert.Nil(t, criteria.CategoryName)
}

func TestParseExpenseParams_MalformedDatesNamed(t *testing.T) {
	_, err := ParseExpenseParams(ExpenseParams{
		Date:     "2024-01-10",
		DateFrom: "2024/02/01",
		DateTo:   "soon",
	})
	require.Error(t, err)

	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, validation.LocationQuery, vErr.Location)
	require.Len(t, vErr.Fields, 2)
	assert.Equal(t, "date_from", vErr.Fields[0].Field)
	assert.Equal(t, "2024/02/01", vErr.Fields[0].Value)
	assert.Equal(t, "date_to", vErr.Fields[1].Field)
}
