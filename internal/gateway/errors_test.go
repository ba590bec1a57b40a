package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate("GetValue", "k", nil))

	err := translate("GetValue", "k", status.Error(codes.NotFound, "Value for key: k not found."))
	assert.Equal(t, &NotFoundError{Key: "k", Message: "Value for key: k not found."}, err)

	for _, code := range []codes.Code{codes.Internal, codes.Unavailable, codes.InvalidArgument, codes.Unknown} {
		err := translate("GetValue", "k", status.Error(code, "x"))
		var remote *RemoteError
		assert.ErrorAs(t, err, &remote, code.String())
		assert.Equal(t, code, remote.Code)
	}

	// Non-status errors are remote errors too.
	err = translate("InsertValue", "k", errors.New("transport closed"))
	assert.Equal(t, OutcomeRemote, Classify(err))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&NotFoundError{Key: "k"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ValidationError{Field: "key"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&RemoteError{Method: "GetValue", Code: codes.Internal, Err: errors.New("x")}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("anything else")))

	wrapped := fmt.Errorf("lookup: %w", &NotFoundError{Key: "k"})
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestValidationMessages(t *testing.T) {
	assert.EqualError(t, ValidateEntry("", "v"), "'key' field can't be empty.")
	assert.EqualError(t, ValidateEntry("k", "\t"), "'value' field can't be empty.")
	assert.NoError(t, ValidateEntry(" k ", " v "))
}

func TestConnectionStateString(t *testing.T) {
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "failed", StateFailed.String())
}
