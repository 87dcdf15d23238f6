package bindgen

import (
	"errors"
	"testing"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		pkg      string
		wantKey  string
		wantType string
	}{
		{
			name:     "path and controller words overlap",
			pattern:  "/users/:id",
			pkg:      "example.com/app/handlers/users_show_controller",
			wantKey:  "USERS_SHOW",
			wantType: "UsersShowRoute",
		},
		{
			name:     "parameter segments are ignored",
			pattern:  "/users/:id/posts/:postId",
			pkg:      "example.com/app/handlers/posts_list_controller",
			wantKey:  "USERS_POSTS_LIST",
			wantType: "UsersPostsListRoute",
		},
		{
			name:     "hyphen and dot segments split into words",
			pattern:  "/api/news-feed",
			pkg:      "example.com/app/handlers/feed_controller",
			wantKey:  "API_NEWS_FEED",
			wantType: "ApiNewsFeedRoute",
		},
		{
			name:     "root pattern uses controller words only",
			pattern:  "/",
			pkg:      "example.com/app/handlers/home_controller",
			wantKey:  "HOME",
			wantType: "HomeRoute",
		},
		{
			name:     "duplicates keep first occurrence order",
			pattern:  "/news/latest",
			pkg:      "example.com/app/handlers/latest_news_controller",
			wantKey:  "NEWS_LATEST",
			wantType: "NewsLatestRoute",
		},
		{
			name:     "mixed-case controller words are lowercased before dedup",
			pattern:  "/users",
			pkg:      "example.com/app/handlers/Users_controller",
			wantKey:  "USERS",
			wantType: "UsersRoute",
		},
		{
			name:     "digit-leading segment gets identifier prefix",
			pattern:  "/2fa/verify",
			pkg:      "example.com/app/handlers/verify_controller",
			wantKey:  "X2FA_VERIFY",
			wantType: "X2faVerifyRoute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deriveName(tt.pattern, tt.pkg)
			if err != nil {
				t.Fatalf("deriveName failed: %v", err)
			}
			if got.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", got.Key, tt.wantKey)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
		})
	}
}

func TestDeriveNameIsDeterministic(t *testing.T) {
	first, err := deriveName("/users/:id", "example.com/h/users_show_controller")
	if err != nil {
		t.Fatal(err)
	}
	second, err := deriveName("/users/:id", "example.com/h/users_show_controller")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("names differ across calls: %+v vs %+v", first, second)
	}
}

func TestDeriveNameMissingSuffix(t *testing.T) {
	for _, pkg := range []string{
		"example.com/app/handlers/users",
		"example.com/app/handlers/users_handler",
		"example.com/app/handlers/_controller",
	} {
		_, err := deriveName("/users", pkg)
		if err == nil {
			t.Errorf("deriveName(%q) succeeded, want NamingError", pkg)
			continue
		}
		var namingErr *NamingError
		if !errors.As(err, &namingErr) {
			t.Errorf("deriveName(%q) = %T, want *NamingError", pkg, err)
		}
	}
}
