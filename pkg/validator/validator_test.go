package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intakeRequest struct {
	ProductID uuid.UUID `validate:"uuid_required"`
	Quantity  int       `validate:"required,gt=0"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(&intakeRequest{ProductID: uuid.New(), Quantity: 50})
	assert.Nil(t, errs)
}

func TestValidateStructRejectsZeroUUID(t *testing.T) {
	errs := ValidateStruct(&intakeRequest{Quantity: 50})
	require.Len(t, errs, 1)
	assert.Equal(t, "intakeRequest.ProductID", errs[0].FailedField)
	assert.Equal(t, "uuid_required", errs[0].Tag)
}

func TestValidateStructReportsEveryFailure(t *testing.T) {
	errs := ValidateStruct(&intakeRequest{Quantity: -5})
	require.Len(t, errs, 2)
	assert.Equal(t, "gt", errs[1].Tag)
}
