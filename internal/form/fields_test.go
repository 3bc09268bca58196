package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for _, f := range AllFields {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("creditCard")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFormData_GetSet(t *testing.T) {
	var d FormData
	for i, f := range AllFields {
		require.NoError(t, d.Set(f, string(rune('a'+i))))
	}
	for i, f := range AllFields {
		assert.Equal(t, string(rune('a'+i)), d.Get(f))
	}

	assert.ErrorIs(t, d.Set("nope", "x"), ErrUnknownField)
	assert.Empty(t, d.Get("nope"))
}

func TestErrorMapClone(t *testing.T) {
	m := ErrorMap{FieldCVV: "CVV is required."}
	c := m.Clone()
	delete(c, FieldCVV)
	assert.Len(t, m, 1)

	var nilMap ErrorMap
	assert.NotNil(t, nilMap.Clone())
}

func TestIsServiceType(t *testing.T) {
	for _, opt := range ServiceTypes {
		assert.True(t, IsServiceType(string(opt.Value)), opt.Value)
	}
	assert.False(t, IsServiceType(""))
	assert.False(t, IsServiceType("Repair"))
}

func TestStepCatalogue(t *testing.T) {
	assert.Equal(t, []Step{StepCustomer, StepProblem, StepPayment, StepReview}, Steps())
	assert.Equal(t, "Customer", StepCustomer.String())
	assert.Equal(t, "Review Your Request", StepReview.Heading())
	assert.Equal(t, "Step(7)", Step(7).String())
	assert.False(t, Step(0).Valid())
	assert.True(t, StepReview.Valid())

	seen := map[Field]bool{}
	for _, s := range Steps() {
		for _, spec := range FieldsFor(s) {
			seen[spec.Field] = true
			step, ok := StepOf(spec.Field)
			assert.True(t, ok)
			assert.Equal(t, s, step)
		}
	}
	assert.Len(t, seen, len(AllFields))
	assert.Empty(t, FieldsFor(StepReview))

	card, ok := SpecFor(FieldCardNumber)
	require.True(t, ok)
	assert.Equal(t, 16, card.MaxLength)
	assert.NotEmpty(t, NoteFor(StepPayment))

	_, ok = SpecFor("nope")
	assert.False(t, ok)
}
