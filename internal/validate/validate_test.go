package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tastingEntry struct {
	Score int       `validate:"required,min=1,max=5"`
	Name  string    `validate:"required,notblank,min=3"`
	Date  time.Time `validate:"required,pastdate"`
}

func validEntry() tastingEntry {
	return tastingEntry{
		Score: 3,
		Name:  "Porter",
		Date:  time.Now().AddDate(0, 0, -1),
	}
}

func violatedFields(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make(map[string]string)
	for _, v := range verr.Violations {
		fields[v.Field] = v.Rule
	}
	return fields
}

func TestEntityValid(t *testing.T) {
	require.NoError(t, Entity(validEntry()))
}

func TestEntityDateToday(t *testing.T) {
	e := validEntry()
	e.Date = time.Now()
	require.NoError(t, Entity(e))
}

func TestEntitySingleViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tastingEntry)
		field  string
		rule   string
	}{
		{"score missing", func(e *tastingEntry) { e.Score = 0 }, "Score", "required"},
		{"score too high", func(e *tastingEntry) { e.Score = 6 }, "Score", "max=5"},
		{"name missing", func(e *tastingEntry) { e.Name = "" }, "Name", "required"},
		{"name blank", func(e *tastingEntry) { e.Name = "   " }, "Name", "notblank"},
		{"name too short", func(e *tastingEntry) { e.Name = "ab" }, "Name", "min=3"},
		{"date in future", func(e *tastingEntry) { e.Date = time.Now().AddDate(0, 0, 1) }, "Date", "pastdate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)

			fields := violatedFields(t, Entity(e))
			assert.Equal(t, tt.rule, fields[tt.field])
		})
	}
}

func TestEntityEnumeratesEveryViolation(t *testing.T) {
	e := tastingEntry{
		Score: 9,
		Name:  " ",
		Date:  time.Now().AddDate(0, 0, 7),
	}

	fields := violatedFields(t, Entity(e))
	assert.Contains(t, fields, "Score")
	assert.Contains(t, fields, "Name")
	assert.Contains(t, fields, "Date")
}

func TestValidationErrorMessage(t *testing.T) {
	err := Entity(tastingEntry{Score: 3, Name: "ab", Date: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "Name")
}
