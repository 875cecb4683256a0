package metabolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmr-calculator/internal/model"
)

func fields(weight, height, age string) model.InputFields {
	return model.InputFields{
		Weight:        weight,
		Height:        height,
		Age:           age,
		Sex:           model.SexFemale,
		ActivityLevel: model.ActivityLight,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        model.InputFields
		wantErr   error
		wantField string
	}{
		{"empty weight", fields("", "175", "30"), ErrMissingField, "weight"},
		{"empty everything", fields("", "", ""), ErrMissingField, "weight"},
		{"non-numeric height", fields("70", "tall", "30"), ErrMissingField, "height"},
		{"whitespace age", fields("70", "175", "   "), ErrMissingField, "age"},
		{"NaN", fields("NaN", "175", "30"), ErrMissingField, "weight"},
		{"Inf", fields("70", "+Inf", "30"), ErrMissingField, "height"},
		{"negative weight", fields("-5", "175", "30"), ErrOutOfRange, "weight"},
		{"zero height", fields("70", "0", "30"), ErrOutOfRange, "height"},
		{"negative age", fields("70", "175", "-1"), ErrOutOfRange, "age"},
		{"huge weight", fields("1e18", "175", "30"), ErrOutOfRange, "measurements"},
		{"huge height", fields("70", "1e300", "30"), ErrOutOfRange, "measurements"},
		{"huge age", fields("70", "175", "1e17"), ErrOutOfRange, "measurements"},
		{"missing wins over range", fields("-5", "175", "x"), ErrMissingField, "age"},
		{"unknown sex", model.InputFields{Weight: "70", Height: "175", Age: "30", Sex: "x", ActivityLevel: model.ActivityLight}, ErrMissingField, "sex"},
		{"unknown activity", model.InputFields{Weight: "70", Height: "175", Age: "30", Sex: model.SexMale}, ErrMissingField, "activity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidate_OK(t *testing.T) {
	m, err := Validate(fields(" 60.5 ", "165", "25"))
	require.NoError(t, err)
	assert.Equal(t, model.Measurements{
		WeightKg:      60.5,
		HeightCm:      165,
		AgeYears:      25,
		Sex:           model.SexFemale,
		ActivityLevel: model.ActivityLight,
	}, m)
}

func TestValidateNumber(t *testing.T) {
	assert.NoError(t, ValidateNumber("weight", "70"))
	assert.ErrorIs(t, ValidateNumber("weight", ""), ErrMissingField)
	assert.ErrorIs(t, ValidateNumber("weight", "abc"), ErrMissingField)
	assert.ErrorIs(t, ValidateNumber("weight", "0"), ErrOutOfRange)
}

func TestUserMessage(t *testing.T) {
	_, err := Validate(fields("", "175", "30"))
	assert.Equal(t, "Please fill in all fields.", UserMessage(err))

	_, err = Validate(fields("-5", "175", "30"))
	assert.Equal(t, "Please enter valid values.", UserMessage(err))

	assert.Empty(t, UserMessage(nil))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "weight", Value: "-5", Err: ErrOutOfRange}
	assert.Equal(t, `weight "-5": please enter valid values`, err.Error())
}

func TestValidate_CalorieBound(t *testing.T) {
	// 1e15 kg gives a raw BMR of about 1e16, above 2^53.
	_, err := Validate(fields("1e15", "175", "30"))
	assert.ErrorIs(t, err, ErrOutOfRange)

	m, err := Validate(fields("1e12", "175", "30"))
	require.NoError(t, err)
	r := ComputeMeasurements(m)
	assert.Positive(t, r.BMR)
	assert.Positive(t, r.TDEE)
	assert.Greater(t, r.MuscleGainTarget(), r.WeightLossTarget())
}
