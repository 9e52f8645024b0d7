package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientUnconfigured(t *testing.T) {
	client, err := NewClient(Config{})
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "not configured")
}

func TestNewClientStripsScheme(t *testing.T) {
	client, err := NewClient(Config{Endpoint: "https://storage.example.com"})
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "derived from endpoint",
			cfg:  Config{Endpoint: "storage.example.com"},
			want: "http://storage.example.com/gallery/gallery/a.jpg",
		},
		{
			name: "derived with ssl and scheme prefix",
			cfg:  Config{Endpoint: "https://storage.example.com", UseSSL: true},
			want: "https://storage.example.com/gallery/gallery/a.jpg",
		},
		{
			name: "public base url override",
			cfg:  Config{Endpoint: "storage.internal:9000", PublicBaseURL: "https://cdn.example.com/"},
			want: "https://cdn.example.com/gallery/gallery/a.jpg",
		},
		{
			name: "unconfigured",
			cfg:  Config{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.PublicURL("gallery", "gallery/a.jpg"))
		})
	}
}
