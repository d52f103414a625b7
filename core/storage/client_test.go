package storage_test

import (
	"testing"

	"bucket-manager/core/storage"
	"bucket-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ storage.Client = (*mocks.Client)(nil)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr bool
	}{
		{
			name: "PlainEndpoint",
			cfg:  storage.Config{Endpoint: "localhost:9000", AccessKey: "key", SecretKey: "secret", Bucket: "files"},
		},
		{
			name: "SchemeIsStripped",
			cfg:  storage.Config{Endpoint: "http://localhost:9000", AccessKey: "key", SecretKey: "secret"},
		},
		{
			name: "TLSWithRegion",
			cfg:  storage.Config{Endpoint: "https://s3.amazonaws.com", UseSSL: true, Region: "eu-west-1", TimeoutSeconds: 5},
		},
		{
			name:    "InvalidEndpoint",
			cfg:     storage.Config{Endpoint: "bad endpoint/with/path"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
