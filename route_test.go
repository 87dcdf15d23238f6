package routebind

import "testing"

type showInput struct {
	Page  int    `schema:"page"`
	Query string `schema:"q"`
}

type showOutput struct {
	Name string `json:"name"`
}

func TestRouteMetadata(t *testing.T) {
	route := Register[None, showOutput](Meta{
		Path:   "/users/{{ id }}",
		Method: "GET",
		Form:   false,
	})

	if got := route.Method(); got != "GET" {
		t.Errorf("Method() = %q, want GET", got)
	}
	if route.Form() {
		t.Error("Form() = true, want false")
	}
	if got := route.Template(); got != "/users/{{ id }}" {
		t.Errorf("Template() = %q", got)
	}
}

func TestRoutePath(t *testing.T) {
	route := Register[None, None](Meta{Path: "/users/{{ id }}", Method: "GET"})

	got, err := route.Path(map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if got != "/users/42" {
		t.Errorf("Path = %q, want /users/42", got)
	}

	if _, err := route.Path(nil); err == nil {
		t.Error("Path(nil) on parameterized template should fail")
	}
}

func TestRoutePathNoParams(t *testing.T) {
	route := Register[None, None](Meta{Path: "/health", Method: "GET"})
	got, err := route.Path(nil)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if got != "/health" {
		t.Errorf("Path = %q, want /health", got)
	}
}

func TestRouteQuery(t *testing.T) {
	route := Register[showInput, showOutput](Meta{Path: "/search", Method: "GET"})

	got, err := route.Query(showInput{Page: 2, Query: "go"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if got != "page=2&q=go" {
		t.Errorf("Query = %q, want page=2&q=go", got)
	}
}

func TestRouteFormFlag(t *testing.T) {
	route := Register[None, None](Meta{Path: "/login", Method: "POST", Form: true})
	if !route.Form() {
		t.Error("Form() = false, want true")
	}
}
