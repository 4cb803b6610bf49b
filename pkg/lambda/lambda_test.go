package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantillas-crud-api/internal/models"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "object", body: `{"id":1,"nombre":"T1"}`},
		{name: "surrounding whitespace", body: "  {\"id\":1}\n"},
		{name: "empty", body: "", wantErr: true},
		{name: "blank", body: "   ", wantErr: true},
		{name: "null", body: "null", wantErr: true},
		{name: "array", body: `[{"id":1}]`, wantErr: true},
		{name: "string", body: `"plantilla"`, wantErr: true},
		{name: "truncated", body: `{"id":1`, wantErr: true},
		{name: "trailing data", body: `{"id":1}{"id":2}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ParseBody(&Request{Body: []byte(tt.body)})
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedBody) {
					t.Errorf("Expected ErrMalformedBody, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBody() error = %v", err)
			}
			if _, ok := payload["id"].(json.Number); !ok {
				t.Errorf("Expected id to be json.Number, got %T", payload["id"])
			}
		})
	}
}

func TestParseBody_NilRequest(t *testing.T) {
	if _, err := ParseBody(nil); !errors.Is(err, ErrMalformedBody) {
		t.Errorf("Expected ErrMalformedBody, got %v", err)
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		want    string
		wantErr bool
	}{
		{name: "present", req: &Request{PathParams: map[string]string{"id": "abc"}}, want: "abc"},
		{name: "empty", req: &Request{PathParams: map[string]string{"id": ""}}, wantErr: true},
		{name: "absent", req: &Request{PathParams: map[string]string{"other": "x"}}, wantErr: true},
		{name: "no params", req: &Request{}, wantErr: true},
		{name: "nil request", req: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathID(tt.req)
			if tt.wantErr {
				if !errors.Is(err, ErrMissingPathID) {
					t.Errorf("Expected ErrMissingPathID, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("PathID() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func decodeEnvelope(t *testing.T, resp *Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Response body is not JSON: %v", err)
	}
	return body
}

func TestFormatResponse_Failure(t *testing.T) {
	f := NewFormatter(time.UTC)

	resp := f.FormatResponse(models.Document{"nombre": "ignored"}, "Error get plantilla!", http.StatusForbidden, false)

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", resp.StatusCode)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Errorf("Expected JSON content type, got %q", resp.Headers["Content-Type"])
	}

	body := decodeEnvelope(t, resp)
	if body["Success"] != false || body["Status"] != float64(403) || body["Message"] != "Error get plantilla!" {
		t.Errorf("Unexpected envelope: %v", body)
	}
	if _, ok := body["Data"]; ok {
		t.Error("Expected no Data on failure")
	}
}

func TestFormatResponse_Document(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	f := NewFormatter(loc)

	oid := primitive.NewObjectID()
	created := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	doc := models.Document{
		"_id":               oid,
		"nombre":            "T1",
		"fechaCreacion":     primitive.NewDateTimeFromTime(created),
		"fechaModificacion": nil,
		"imagenes": primitive.M{
			"id":   int32(1),
			"data": primitive.Binary{Data: []byte("hello")},
		},
		"tags": primitive.A{oid, "x"},
	}

	resp := f.FormatResponse(doc, "plantilla OK", http.StatusOK, true)
	body := decodeEnvelope(t, resp)

	if body["Success"] != true || body["Status"] != float64(200) {
		t.Errorf("Unexpected envelope: %v", body)
	}

	data, ok := body["Data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected Data object, got %T", body["Data"])
	}
	if data["_id"] != oid.Hex() {
		t.Errorf("Expected _id %s, got %v", oid.Hex(), data["_id"])
	}
	if data["fechaCreacion"] != "2024-01-02T10:04:05.000-05:00" {
		t.Errorf("Expected timestamp in configured timezone, got %v", data["fechaCreacion"])
	}
	if v, exists := data["fechaModificacion"]; !exists || v != nil {
		t.Errorf("Expected null fechaModificacion, got %v", v)
	}

	imagenes := data["imagenes"].(map[string]interface{})
	if imagenes["data"] != "aGVsbG8=" {
		t.Errorf("Expected base64 image data, got %v", imagenes["data"])
	}

	tags := data["tags"].([]interface{})
	if tags[0] != oid.Hex() {
		t.Errorf("Expected nested ObjectID as hex, got %v", tags[0])
	}
}

func TestFormatResponse_List(t *testing.T) {
	f := NewFormatter(nil)
	docs := []models.Document{
		{"_id": primitive.NewObjectID(), "nombre": "A"},
		{"_id": primitive.NewObjectID(), "nombre": "B"},
	}

	body := decodeEnvelope(t, f.FormatResponse(docs, "plantilla OK", http.StatusOK, true))

	data, ok := body["Data"].([]interface{})
	if !ok || len(data) != 2 {
		t.Fatalf("Expected list of 2, got %v", body["Data"])
	}
	for i, item := range data {
		doc := item.(map[string]interface{})
		if _, isString := doc["_id"].(string); !isString {
			t.Errorf("Item %d: expected string _id, got %T", i, doc["_id"])
		}
	}
}

func TestFormatResponse_UnencodableData(t *testing.T) {
	f := NewFormatter(time.UTC)

	resp := f.FormatResponse(models.Document{"bad": make(chan int)}, "Created plantilla", http.StatusCreated, true)

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected fallback status 403, got %d", resp.StatusCode)
	}
	body := decodeEnvelope(t, resp)
	if body["Success"] != false {
		t.Errorf("Expected failure envelope, got %v", body)
	}
	if _, ok := body["Data"]; ok {
		t.Error("Expected no Data on fallback")
	}
}

func TestAPIGatewayHandler(t *testing.T) {
	t.Run("passes request through", func(t *testing.T) {
		var got *Request
		handler := APIGatewayHandler(func(ctx context.Context, req *Request) (*Response, error) {
			got = req
			return &Response{StatusCode: http.StatusCreated, Body: []byte(`{}`)}, nil
		})

		resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod:     http.MethodPost,
			Path:           "/plantilla",
			Body:           `{"id":1}`,
			PathParameters: map[string]string{"id": "abc"},
			RequestContext: events.APIGatewayProxyRequestContext{RequestID: "req-1"},
		})
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if resp.StatusCode != http.StatusCreated || resp.Body != `{}` {
			t.Errorf("Unexpected response: %+v", resp)
		}
		if got.RequestID != "req-1" || got.PathParams["id"] != "abc" || string(got.Body) != `{"id":1}` {
			t.Errorf("Unexpected request: %+v", got)
		}
	})

	t.Run("generates request id", func(t *testing.T) {
		var got *Request
		handler := APIGatewayHandler(func(ctx context.Context, req *Request) (*Response, error) {
			got = req
			return &Response{StatusCode: http.StatusOK}, nil
		})

		if _, err := handler(context.Background(), events.APIGatewayProxyRequest{}); err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if got.RequestID == "" {
			t.Error("Expected a generated request id")
		}
	})

	t.Run("handler error", func(t *testing.T) {
		handler := APIGatewayHandler(func(ctx context.Context, req *Request) (*Response, error) {
			return nil, errors.New("boom")
		})

		resp, err := handler(context.Background(), events.APIGatewayProxyRequest{})
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", resp.StatusCode)
		}
	})
}
