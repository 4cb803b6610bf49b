package lambda

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantillas-crud-api/internal/models"
)

// DateTimeLayout is how stored timestamps are rendered in responses
const DateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Envelope is the JSON body returned by every handler
type Envelope struct {
	Success bool        `json:"Success"`
	Status  int         `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

// Formatter builds response envelopes, rendering identifiers and timestamps
// as strings in the configured timezone.
type Formatter struct {
	loc *time.Location
}

// NewFormatter creates a formatter for the given timezone
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

// FormatResponse wraps result in an envelope. Data is only present on success;
// a failed response never carries it, whatever result holds.
func (f *Formatter) FormatResponse(result interface{}, message string, statusCode int, success bool) *Response {
	envelope := Envelope{
		Success: success,
		Status:  statusCode,
		Message: message,
	}

	if success {
		envelope.Data = f.formatValue(result)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		envelope = Envelope{Success: false, Status: http.StatusForbidden, Message: message}
		statusCode = http.StatusForbidden
		body, _ = json.Marshal(envelope)
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func (f *Formatter) formatValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case models.Document:
		return f.formatDocument(v)
	case []models.Document:
		out := make([]interface{}, 0, len(v))
		for _, doc := range v {
			out = append(out, f.formatDocument(doc))
		}
		return out
	case map[string]interface{}:
		return f.formatDocument(v)
	case primitive.M:
		return f.formatDocument(v)
	case primitive.D:
		return f.formatDocument(v.Map())
	case []interface{}:
		return f.formatList(v)
	case primitive.A:
		return f.formatList(v)
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time().In(f.loc).Format(DateTimeLayout)
	case time.Time:
		return v.In(f.loc).Format(DateTimeLayout)
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.In(f.loc).Format(DateTimeLayout)
	case primitive.Binary:
		return base64.StdEncoding.EncodeToString(v.Data)
	case primitive.Timestamp:
		return time.Unix(int64(v.T), 0).In(f.loc).Format(DateTimeLayout)
	default:
		return v
	}
}

func (f *Formatter) formatDocument(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = f.formatValue(v)
	}
	return out
}

func (f *Formatter) formatList(list []interface{}) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, v := range list {
		out = append(out, f.formatValue(v))
	}
	return out
}
