package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/pkg/validator"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestCalculateAgeAt(t *testing.T) {
	t.Parallel()

	birth := day(2008, time.March, 15)

	t.Run("day before birthday", func(t *testing.T) {
		assert.Equal(t, 14, validator.CalculateAgeAt(birth, day(2023, time.March, 14)))
	})
	t.Run("on birthday", func(t *testing.T) {
		assert.Equal(t, 15, validator.CalculateAgeAt(birth, day(2023, time.March, 15)))
	})
	t.Run("after birthday", func(t *testing.T) {
		assert.Equal(t, 15, validator.CalculateAgeAt(birth, day(2023, time.December, 1)))
	})
	t.Run("earlier month", func(t *testing.T) {
		assert.Equal(t, 14, validator.CalculateAgeAt(birth, day(2023, time.February, 28)))
	})
	t.Run("leap day birth before march", func(t *testing.T) {
		leap := day(2012, time.February, 29)
		assert.Equal(t, 10, validator.CalculateAgeAt(leap, day(2023, time.February, 28)))
		assert.Equal(t, 11, validator.CalculateAgeAt(leap, day(2023, time.March, 1)))
	})
}

func TestParseBirthDate(t *testing.T) {
	t.Run("iso layout", func(t *testing.T) {
		got, err := validator.ParseBirthDate("2008-03-15")
		require.NoError(t, err)
		assert.Equal(t, day(2008, time.March, 15), got)
	})
	t.Run("day first layout", func(t *testing.T) {
		got, err := validator.ParseBirthDate("15/03/2008")
		require.NoError(t, err)
		assert.Equal(t, day(2008, time.March, 15), got)
	})
	t.Run("impossible calendar date", func(t *testing.T) {
		_, err := validator.ParseBirthDate("2023-02-30")
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrUnparseableDate))
	})
}

func TestValidateBirthDateAt(t *testing.T) {
	t.Parallel()

	today := day(2024, time.June, 10)

	t.Run("every age inside the range is valid", func(t *testing.T) {
		minAge, maxAge := 11, 17
		for age := minAge; age <= maxAge; age++ {
			birth := today.AddDate(-age, 0, 0).Format("2006-01-02")
			res := validator.ValidateBirthDateAt(birth, intPtr(minAge), intPtr(maxAge), today)
			assert.True(t, res.Valid, "age %d", age)
		}
	})

	t.Run("one year younger than minimum", func(t *testing.T) {
		birth := today.AddDate(-10, 0, 0).Format("2006-01-02")
		res := validator.ValidateBirthDateAt(birth, intPtr(11), intPtr(17), today)
		assert.False(t, res.Valid)
		assert.Equal(t, validator.CodeBelowMinAge, res.Code)
		assert.Equal(t, 11, res.TranslationValues["min_age"])
	})

	t.Run("older than maximum", func(t *testing.T) {
		birth := today.AddDate(-18, 0, 0).Format("2006-01-02")
		res := validator.ValidateBirthDateAt(birth, intPtr(11), intPtr(17), today)
		assert.False(t, res.Valid)
		assert.Equal(t, validator.CodeAboveMaxAge, res.Code)
	})

	t.Run("nil maximum never fails on the upper side", func(t *testing.T) {
		birth := today.AddDate(-95, 0, 0).Format("2006-01-02")
		res := validator.ValidateBirthDateAt(birth, intPtr(11), nil, today)
		assert.True(t, res.Valid)
	})

	t.Run("no bounds", func(t *testing.T) {
		res := validator.ValidateBirthDateAt("2000-01-01", nil, nil, today)
		assert.True(t, res.Valid)
	})

	t.Run("empty", func(t *testing.T) {
		res := validator.ValidateBirthDateAt("  ", intPtr(11), nil, today)
		assert.Equal(t, validator.CodeEmpty, res.Code)
	})

	t.Run("unparseable", func(t *testing.T) {
		res := validator.ValidateBirthDateAt("not a date", nil, nil, today)
		assert.Equal(t, validator.CodeUnparseable, res.Code)
	})

	t.Run("future date", func(t *testing.T) {
		res := validator.ValidateBirthDateAt("2030-01-01", nil, nil, today)
		assert.False(t, res.Valid)
		assert.Equal(t, validator.CodeUnparseable, res.Code)
	})

	t.Run("birthday boundary", func(t *testing.T) {
		res := validator.ValidateBirthDateAt("2008-03-15", intPtr(15), nil, day(2023, time.March, 14))
		assert.Equal(t, validator.CodeBelowMinAge, res.Code)

		res = validator.ValidateBirthDateAt("2008-03-15", intPtr(15), nil, day(2023, time.March, 15))
		assert.True(t, res.Valid)
	})
}

func TestValidateBirthDate_UsesWallClock(t *testing.T) {
	birth := time.Now().AddDate(-20, 0, -1).Format("2006-01-02")
	assert.True(t, validator.ValidateBirthDate(birth, intPtr(20), intPtr(20)).Valid)
}
