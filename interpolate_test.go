package routebind

import (
	"strings"
	"testing"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		want     string
		wantErr  string
	}{
		{
			name:     "single placeholder",
			template: "/users/{{ id }}",
			params:   map[string]string{"id": "42"},
			want:     "/users/42",
		},
		{
			name:     "multiple placeholders",
			template: "/users/{{ id }}/posts/{{ postId }}",
			params:   map[string]string{"id": "1", "postId": "2"},
			want:     "/users/1/posts/2",
		},
		{
			name:     "no placeholders",
			template: "/health",
			params:   nil,
			want:     "/health",
		},
		{
			name:     "extra params are ignored",
			template: "/users/{{ id }}",
			params:   map[string]string{"id": "7", "unused": "x"},
			want:     "/users/7",
		},
		{
			name:     "missing parameter",
			template: "/users/{{ id }}",
			params:   map[string]string{},
			wantErr:  "missing parameters: id",
		},
		{
			name:     "several missing parameters",
			template: "/a/{{ x }}/b/{{ y }}",
			params:   nil,
			wantErr:  "missing parameters: x, y",
		},
		{
			name:     "empty value is substituted",
			template: "/users/{{ id }}",
			params:   map[string]string{"id": ""},
			want:     "/users/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interpolate(tt.template, tt.params)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Interpolate(%q) = %q, want error containing %q", tt.template, got, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error %q does not contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Interpolate(%q) failed: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Interpolate(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestInterpolateIsPure(t *testing.T) {
	params := map[string]string{"id": "1"}
	first, err := Interpolate("/users/{{ id }}", params)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Interpolate("/users/{{ id }}", params)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated interpolation differs: %q vs %q", first, second)
	}
}
