package storage

import "testing"

func TestObjectURL(t *testing.T) {
	tests := []struct {
		base, bucket, object, want string
	}{
		{"https://cdn.example.com", "site", "images/a.png", "https://cdn.example.com/site/images/a.png"},
		{"https://cdn.example.com/", "site", "/images/a.png", "https://cdn.example.com/site/images/a.png"},
	}
	for _, tc := range tests {
		if got := ObjectURL(tc.base, tc.bucket, tc.object); got != tc.want {
			t.Errorf("ObjectURL(%q, %q, %q) = %q, want %q", tc.base, tc.bucket, tc.object, got, tc.want)
		}
	}
}
