package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagedResult_HasMoreAndPageCount(t *testing.T) {
	cases := []struct {
		name      string
		page      PagedResult
		hasMore   bool
		pageCount int
	}{
		{"first of three", PagedResult{Page: 0, Limit: 2, Total: 5}, true, 3},
		{"last partial", PagedResult{Page: 2, Limit: 2, Total: 5}, false, 3},
		{"exact multiple", PagedResult{Page: 1, Limit: 5, Total: 10}, false, 2},
		{"empty", PagedResult{Page: 0, Limit: 20, Total: 0}, false, 0},
		{"no page size", PagedResult{Page: 0, Limit: 0, Total: 10}, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.hasMore, tc.page.HasMore())
			assert.Equal(t, tc.pageCount, tc.page.PageCount())
		})
	}
}

func TestResult_Unwrap(t *testing.T) {
	v, err := Success(UserID("a1")).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, UserID("a1"), v)

	_, err = Failure[UserID](CodeResourceNotFound, "User not found").Unwrap()
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeResourceNotFound, opErr.Code)
	assert.Equal(t, "User not found", err.Error())

	_, err = Loading[UserID]().Unwrap()
	assert.True(t, errors.Is(err, ErrStillLoading))
}

func TestFailure_EmptyCodeIsUnknown(t *testing.T) {
	r := Failure[int]("", "")
	assert.True(t, r.IsError())
	assert.Equal(t, CodeUnknown, r.Code)

	_, err := r.Unwrap()
	assert.Equal(t, "UNKNOWN", err.Error())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "status(7)", Status(7).String())
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Sara Andersen", UserPreview{FirstName: "Sara", LastName: "Andersen"}.FullName())
	assert.Equal(t, "Sara", UserDetail{FirstName: "Sara"}.FullName())
	assert.Equal(t, "Andersen", UserDetail{LastName: "Andersen"}.FullName())
}

func TestUserDetail_CloneCopiesLocation(t *testing.T) {
	u := UserDetail{ID: "a1", Location: &Location{City: "Oslo"}}
	c := u.Clone()
	c.Location.City = "Bergen"
	assert.Equal(t, "Oslo", u.Location.City)
	assert.Nil(t, UserDetail{}.Clone().Location)
}
