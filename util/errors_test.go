package util

import (
	"errors"
	"fmt"
	"llist/linkedlist"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty list", linkedlist.ErrEmptyList, ERROR_EMPTY_LIST},
		{"wrapped missing key", fmt.Errorf("item 2: %w", linkedlist.ErrMissingKey), ERROR_MISSING_KEY},
		{"key conflict", linkedlist.ErrKeyConflict, ERROR_KEY_CONFLICT},
		{"pointer with code", &ErrorWithCode{StatusCode: ERROR_BAD_INPUT_PATH, InternalError: errors.New("x")}, ERROR_BAD_INPUT_PATH},
		{"value with code", ErrorWithCode{StatusCode: ERROR_BAD_INPUT_CONTENT, InternalError: errors.New("x")}, ERROR_BAD_INPUT_CONTENT},
		{"wrapped code", fmt.Errorf("loading: %w", &ErrorWithCode{StatusCode: ERROR_BAD_INPUT_PATH, InternalError: errors.New("x")}), ERROR_BAD_INPUT_PATH},
		{"unrelated", errors.New("boom"), ERROR_GENERIC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeFor(tt.err))
		})
	}
}

func TestWithCode(t *testing.T) {
	assert.Nil(t, WithCode(nil))

	err := WithCode(fmt.Errorf("batch: %w", linkedlist.ErrHeterogeneousBatch))
	assert.Equal(t, ERROR_HETEROGENEOUS_BATCH, CodeFor(err))
	assert.ErrorIs(t, err, linkedlist.ErrHeterogeneousBatch)
	assert.EqualError(t, err, "batch: batch mixes incompatible item kinds")
}
