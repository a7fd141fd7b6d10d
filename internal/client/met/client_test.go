package met

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.Client(), srv.URL, 2*time.Second), srv
}

func TestGetObjectSuccess(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/objects/436121" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"objectID": 436121,
			"title": "Wheat Field with Cypresses",
			"artistDisplayName": "Vincent van Gogh",
			"objectDate": "1889",
			"primaryImageSmall": "https://images/small.jpg",
			"primaryImage": "https://images/full.jpg",
			"objectURL": "https://www.metmuseum.org/art/collection/search/436121"
		}`))
	})
	defer srv.Close()

	obj, raw, err := client.GetObject(context.Background(), "436121")
	if err != nil {
		t.Fatalf("GetObject failed: %v", err)
	}
	if obj.Title != "Wheat Field with Cypresses" {
		t.Fatalf("title = %q", obj.Title)
	}
	if obj.ImageURL() != "https://images/small.jpg" {
		t.Fatalf("image = %q, want small preferred", obj.ImageURL())
	}
	if len(raw) == 0 {
		t.Fatalf("raw body missing")
	}
}

func TestGetObjectImageFallback(t *testing.T) {
	obj := &Object{PrimaryImage: "https://images/full.jpg"}
	if obj.ImageURL() != "https://images/full.jpg" {
		t.Fatalf("image = %q, want full image fallback", obj.ImageURL())
	}
	if (&Object{}).ImageURL() != "" {
		t.Fatalf("imageless object must yield empty url")
	}
}

func TestGetObjectNotFoundStatus(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"ObjectID not found"}`, http.StatusNotFound)
	})
	defer srv.Close()

	_, _, err := client.GetObject(context.Background(), "0")
	if !IsNotFound(err) {
		t.Fatalf("404 classified as %v, want ErrObjectNotFound", err)
	}
}

func TestGetObjectNotFoundBody(t *testing.T) {
	// The Met API sometimes answers 200 with a message body for unknown ids.
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Not a valid object"}`))
	})
	defer srv.Close()

	_, _, err := client.GetObject(context.Background(), "999999999")
	if !IsNotFound(err) {
		t.Fatalf("absent body classified as %v, want ErrObjectNotFound", err)
	}
}

func TestGetObjectServerErrorIsTransient(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})
	defer srv.Close()

	_, _, err := client.GetObject(context.Background(), "1")
	if err == nil || IsNotFound(err) {
		t.Fatalf("502 classified as %v, want transient failure", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadGateway {
		t.Fatalf("expected APIError with status 502, got %v", err)
	}
}

func TestGetObjectTimeoutIsTransient(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	client := NewClient(srv.Client(), srv.URL, 50*time.Millisecond)
	_, _, err := client.GetObject(context.Background(), "1")
	if err == nil || IsNotFound(err) {
		t.Fatalf("timeout classified as %v, want transient failure", err)
	}
}

func TestGetObjectEmptyID(t *testing.T) {
	client := NewClient(http.DefaultClient, "http://localhost:0", time.Second)
	if _, _, err := client.GetObject(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty id")
	}
}
