package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchBearer(t *testing.T) {
	const token = "s3cr3t-token"

	tests := []struct {
		name   string
		header string
		token  string
		want   bool
	}{
		{name: "exact match", header: "Bearer s3cr3t-token", token: token, want: true},
		{name: "missing header", header: "", token: token, want: false},
		{name: "lowercase scheme", header: "bearer s3cr3t-token", token: token, want: false},
		{name: "token case differs", header: "Bearer S3CR3T-TOKEN", token: token, want: false},
		{name: "no scheme", header: "s3cr3t-token", token: token, want: false},
		{name: "extra space", header: "Bearer  s3cr3t-token", token: token, want: false},
		{name: "trailing space", header: "Bearer s3cr3t-token ", token: token, want: false},
		{name: "prefix of token", header: "Bearer s3cr3t", token: token, want: false},
		{name: "basic scheme", header: "Basic s3cr3t-token", token: token, want: false},
		{name: "empty configured token", header: "Bearer ", token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchBearer(tt.header, tt.token))
		})
	}
}

func TestHasAnyPrefix(t *testing.T) {
	prefixes := []string{"/swagger", "/health"}

	assert.True(t, HasAnyPrefix("/swagger", prefixes))
	assert.True(t, HasAnyPrefix("/swagger/index.html", prefixes))
	assert.True(t, HasAnyPrefix("/swaggerish", prefixes))
	assert.True(t, HasAnyPrefix("/health", prefixes))
	assert.False(t, HasAnyPrefix("/users", prefixes))
	assert.False(t, HasAnyPrefix("/users/swagger", prefixes))
	assert.False(t, HasAnyPrefix("/users", []string{""}))
	assert.False(t, HasAnyPrefix("/users", nil))
}

// BenchmarkMatchBearer benchmarks the header comparison
func BenchmarkMatchBearer(b *testing.B) {
	header := "Bearer s3cr3t-token"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MatchBearer(header, "s3cr3t-token")
	}
}
