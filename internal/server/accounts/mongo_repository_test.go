package accounts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dmitrijs2005/linkhub/internal/common"
)

func TestTranslateMongoWriteError(t *testing.T) {
	duplicate := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil passes through", in: nil, want: nil},
		{name: "duplicate key maps to already exists", in: duplicate, want: common.ErrorAlreadyExists},
		{name: "other errors map to storage unavailable", in: errors.New("connection reset"), want: common.ErrorStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateMongoWriteError(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTranslateMongoWriteError_NeverNotFound(t *testing.T) {
	// I/O failures must not be mistaken for missing records.
	err := translateMongoWriteError(errors.New("server selection timeout"))
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}
