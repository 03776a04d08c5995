package checkerror_test

import (
	"net/http"
	"testing"

	"github.com/mdouchement/checklist/internal/checkerror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := checkerror.NotFound("some message")

	assert.Equal(t, "some message", err.Error())
	assert.Equal(t, http.StatusNotFound, checkerror.StatusCode(err))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, checkerror.StatusCode(checkerror.Unauthorized("nope")))
	assert.Equal(t, http.StatusConflict, checkerror.StatusCode(checkerror.Conflict("duplicate")))
	assert.Equal(t, http.StatusInternalServerError, checkerror.StatusCode(errors.New("boom")))
}
