package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "filesmanager/internal/errors"
	"filesmanager/internal/handler"
)

func TestCustomValidator_ReportsFirstMissingField(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  any
		want error
	}{
		{"valid", &handler.RegisterRequest{Email: "a@b.c", Password: "x"}, nil},
		{"missing email", &handler.RegisterRequest{Password: "x"}, apperrors.Missing("email")},
		{"both missing", &handler.RegisterRequest{}, apperrors.Missing("email")},
		{"folder without data", &handler.CreateFileRequest{Name: "d", Type: "folder"}, nil},
		{"file without data", &handler.CreateFileRequest{Name: "d", Type: "file"}, apperrors.Missing("data")},
		{"unknown type", &handler.CreateFileRequest{Name: "d", Type: "video", Data: "eA=="}, apperrors.Missing("type")},
		{"missing name", &handler.CreateFileRequest{Type: "file", Data: "eA=="}, apperrors.Missing("name")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}
